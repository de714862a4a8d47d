// Package ordmap is the map façade over package llrbt: it adds tombstone
// (logical) deletion, deferred rehash/compaction, Size/NumNodes tracking,
// and the iterator family, on top of the balanced-tree engine.
//
// This mirrors the teacher's rbtree.Tree embedding *bst.Tree[K,V,Color] to
// add balancing on top of a plain BST: here, Map embeds *llrbt.Tree[K,V]
// to add the tombstone/rehash map semantics on top of a plain LLRBT.
package ordmap

import (
	"fmt"

	"github.com/devnw/llrbmap/llrbt"
)

// Map is an ordered map backed by a Left-Leaning Red-Black Tree with
// tombstone deletion and deferred rehash/compaction.
//
// Map embeds *llrbt.Tree[K,V], which means every exported method of Tree
// is promoted and callable directly on a Map value. Root, Height, Search,
// Path, IsTreeValid, and KeyEqual are read-only or otherwise safe to use
// as-is. Calling any of the following embedded methods directly would
// desynchronize the size/numNodes bookkeeping Map maintains alongside
// the tree. Get, Erase, Clear, and Clone are shadowed by a Map method of
// the same name, so reach them through Map, not Map.Tree; RehashInsert
// and Fresh have no Map counterpart:
//
//   - Tree.Get — bypasses Map's live-count bookkeeping; use Map.Get/Map.Put.
//   - Tree.Erase — bypasses Map's live-count bookkeeping; use Map.Erase.
//   - Tree.Clear — leaves size/numNodes stale; use Map.Clear.
//   - Tree.Clone — leaves size/numNodes off the returned Tree; use Map.Clone.
//   - Tree.RehashInsert, Tree.Fresh — internal to Map.Rehash; do not call directly.
//
// This is the same "safe vs. unsafe inherited methods" contract the
// teacher documents for rbtree.Tree's embedding of *bst.Tree.
type Map[K, V any] struct {
	*llrbt.Tree[K, V]

	size     int // live (non-tombstone) entry count
	numNodes int // total node count, live + tombstone
}

// New creates an empty Map ordered by less.
func New[K, V any](less llrbt.LessFunc[K], opts ...llrbt.Option[K, V]) *Map[K, V] {
	return &Map[K, V]{Tree: llrbt.New(less, opts...)}
}

// Get returns a mutable reference to the value stored at key, creating a
// default-valued live entry (or resurrecting a tombstone) if key is
// absent. This is the spec's get(): "the reference and assign" primitive
// that put/insert are both built from.
func (m *Map[K, V]) Get(key K) *V {
	before := m.Tree.Search(key)
	wasAbsent := before == nil
	wasTombstone := before != nil && before.IsDead()

	n := m.Tree.Get(key)

	switch {
	case wasAbsent:
		m.numNodes++
		m.size++
	case wasTombstone:
		m.size++
	}
	return n.ValuePtr()
}

// Put inserts or overwrites the value for key and marks it live,
// resurrecting any tombstone at key. It returns the map for chaining,
// matching the teacher's fluent builder style in bst/rbtree constructors.
func (m *Map[K, V]) Put(key K, value V) *Map[K, V] {
	*m.Get(key) = value
	return m
}

// Retrieve reports whether key names a live entry; if so it writes its
// value to out and returns true, leaving out untouched and returning
// false otherwise. Unlike Get, Retrieve never creates an entry.
func (m *Map[K, V]) Retrieve(key K, out *V) bool {
	n := m.Tree.Search(key)
	if n == nil || n.IsDead() {
		return false
	}
	*out = n.Value()
	return true
}

// Erase marks key's entry as a tombstone if it is currently live. It is a
// no-op if key is absent or already a tombstone. Erase never triggers a
// rehash on its own — see Rehash and the spec's deferred-compaction note.
func (m *Map[K, V]) Erase(key K) {
	if m.Tree.Erase(key) {
		m.size--
	}
}

// Includes returns an Iterator positioned at key's live entry, or End if
// key is absent or a tombstone.
func (m *Map[K, V]) Includes(key K) Iterator[K, V] {
	return m.Find(key)
}

// Size returns the number of live (non-tombstone) entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// NumNodes returns the total node count, live entries plus tombstones.
// NumNodes - Size is exactly the number of tombstones a Rehash would
// reclaim.
func (m *Map[K, V]) NumNodes() int {
	return m.numNodes
}

// Empty reports whether the map has no live entries. A map with only
// tombstones (Size() == 0, NumNodes() > 0) is still Empty.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Clear removes every node, live or tombstone, and resets Size/NumNodes
// to zero. The tree becomes empty.
func (m *Map[K, V]) Clear() {
	m.Tree.Clear()
	m.size = 0
	m.numNodes = 0
}

// Rehash rebuilds the tree from its live in-order sequence, discarding
// every tombstone. Apart from Clear, which discards every node, it is the
// only operation that reclaims tombstone memory; callers decide when to
// call it (spec.md's deferred-compaction
// design leaves the trigger policy to the caller, not the map).
func (m *Map[K, V]) Rehash() {
	fresh := m.Tree.Fresh()
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		fresh.RehashInsert(it.Key(), it.Value())
	}
	m.Tree = fresh
	m.numNodes = m.size
}

// Clone returns a deep copy of the map: every node (live and tombstone)
// is duplicated, and the two maps share no structure afterward.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		Tree:     m.Tree.Clone(),
		size:     m.size,
		numNodes: m.numNodes,
	}
}

// Equal reports whether m and other contain the same live key/value
// pairs in the same order, using reflect.DeepEqual for value comparison
// (V carries no comparable constraint, matching the teacher's use of
// reflect in bst.Node.String/IsValueNil for the same reason: an any-typed
// field with no operator support). Equal does not compare the maps'
// LessFunc values — see DESIGN.md Open Question 5.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Size() != other.Size() {
		return false
	}
	a, b := m.Begin(), other.Begin()
	aEnd, bEnd := m.End(), other.End()
	for !a.Equal(aEnd) && !b.Equal(bEnd) {
		if !m.Tree.KeyEqual(a.Key(), b.Key()) {
			return false
		}
		if !deepEqual(a.Value(), b.Value()) {
			return false
		}
		a.Next()
		b.Next()
	}
	return a.Equal(aEnd) && b.Equal(bEnd)
}

// String renders the map's live entries in order, "{k1:v1 k2:v2 ...}",
// matching the teacher's habit of giving tree/node types a Stringer for
// use in Example tests.
func (m *Map[K, V]) String() string {
	s := "{"
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		if s != "{" {
			s += " "
		}
		s += fmt.Sprintf("%v:%v", it.Key(), it.Value())
	}
	return s + "}"
}
