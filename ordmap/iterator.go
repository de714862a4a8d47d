package ordmap

import "github.com/devnw/llrbmap/llrbt"

// Iterator walks a Map's live entries in ascending key order. It carries
// an explicit ancestor stack rather than a parent pointer: llrbt.Node has
// no parent link (rotations would have to maintain it on every repair
// step), so "where do I go next" is answered by replaying the descent
// instead of walking upward through parents. This mirrors the teacher's
// own choice to keep BST node navigation (Predecessor/Successor) entirely
// pointer-based only where a parent pointer already exists; here it
// doesn't, so the stack takes its place.
//
// The zero Iterator is the End sentinel; obtain a positioned one from
// Map.Begin or Map.Find.
type Iterator[K, V any] struct {
	stack []*llrbt.Node[K, V]
}

func pushLeftSpine[K, V any](stack []*llrbt.Node[K, V], n *llrbt.Node[K, V]) []*llrbt.Node[K, V] {
	for n != nil {
		stack = append(stack, n)
		n = n.Left()
	}
	return stack
}

// skipDead advances the iterator past any run of tombstones, so that a
// valid, non-end Iterator always rests on a live node.
func (it *Iterator[K, V]) skipDead() {
	for len(it.stack) > 0 && it.top().IsDead() {
		it.advance()
	}
}

func (it *Iterator[K, V]) top() *llrbt.Node[K, V] {
	return it.stack[len(it.stack)-1]
}

// advance performs one raw in-order step, live or dead.
func (it *Iterator[K, V]) advance() {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if n.Right() != nil {
		it.stack = pushLeftSpine(it.stack, n.Right())
	}
}

// Begin returns an Iterator positioned at the first live entry, or an
// End iterator if the map has none.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{stack: pushLeftSpine[K, V](nil, m.Root())}
	it.skipDead()
	return it
}

// End returns the past-the-end Iterator sentinel.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Find returns an Iterator positioned at key if it names a live entry,
// or End if key is absent or a tombstone.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	stack := m.Tree.Path(key)
	if stack == nil {
		return m.End()
	}
	return Iterator[K, V]{stack: stack}
}

// Key returns the key at the iterator's current position. Calling it on
// an End iterator panics with an index-out-of-range, the same contract
// the teacher's own unguarded slice-backed iterators carry.
func (it *Iterator[K, V]) Key() K {
	return it.top().Key()
}

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() V {
	return it.top().Value()
}

// Next advances the iterator to the next live entry, or to End if there
// is none.
func (it *Iterator[K, V]) Next() {
	it.advance()
	it.skipDead()
}

// Equal reports whether two iterators are at the same position. Two End
// iterators are always equal; a non-End iterator is never equal to End.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if len(it.stack) == 0 || len(other.stack) == 0 {
		return len(it.stack) == len(other.stack)
	}
	return it.top() == other.top()
}

// ReverseIterator walks a Map's live entries in descending key order.
// Its stack holds the right spine instead of the left, mirroring
// Iterator exactly.
type ReverseIterator[K, V any] struct {
	stack []*llrbt.Node[K, V]
}

func pushRightSpine[K, V any](stack []*llrbt.Node[K, V], n *llrbt.Node[K, V]) []*llrbt.Node[K, V] {
	for n != nil {
		stack = append(stack, n)
		n = n.Right()
	}
	return stack
}

func (it *ReverseIterator[K, V]) top() *llrbt.Node[K, V] {
	return it.stack[len(it.stack)-1]
}

func (it *ReverseIterator[K, V]) advance() {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if n.Left() != nil {
		it.stack = pushRightSpine(it.stack, n.Left())
	}
}

func (it *ReverseIterator[K, V]) skipDead() {
	for len(it.stack) > 0 && it.top().IsDead() {
		it.advance()
	}
}

// RBegin returns a ReverseIterator positioned at the last live entry.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	it := ReverseIterator[K, V]{stack: pushRightSpine[K, V](nil, m.Root())}
	it.skipDead()
	return it
}

// REnd returns the past-the-end ReverseIterator sentinel.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{}
}

// Key returns the key at the reverse iterator's current position.
func (it *ReverseIterator[K, V]) Key() K {
	return it.top().Key()
}

// Value returns the value at the reverse iterator's current position.
func (it *ReverseIterator[K, V]) Value() V {
	return it.top().Value()
}

// Next advances the reverse iterator toward smaller keys.
func (it *ReverseIterator[K, V]) Next() {
	it.advance()
	it.skipDead()
}

// Equal reports whether two reverse iterators are at the same position.
func (it ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	if len(it.stack) == 0 || len(other.stack) == 0 {
		return len(it.stack) == len(other.stack)
	}
	return it.top() == other.top()
}

// LevelOrderIterator walks every node breadth-first, live entries and
// tombstones alike. Unlike Iterator/ReverseIterator it is not
// tombstone-filtered: it is a structural/debug view, matching
// StructuralIterator's purpose, not the map's logical contents. The
// spec's non-goal on a dedicated queue/deque type means the frontier is
// a plain slice used FIFO, not a ring buffer or container/list.
type LevelOrderIterator[K, V any] struct {
	queue []*llrbt.Node[K, V]
}

// BeginLevelOrder returns a LevelOrderIterator starting at the root.
func (m *Map[K, V]) BeginLevelOrder() LevelOrderIterator[K, V] {
	if m.Root() == nil {
		return LevelOrderIterator[K, V]{}
	}
	return LevelOrderIterator[K, V]{queue: []*llrbt.Node[K, V]{m.Root()}}
}

// EndLevelOrder returns the past-the-end LevelOrderIterator sentinel.
func (m *Map[K, V]) EndLevelOrder() LevelOrderIterator[K, V] {
	return LevelOrderIterator[K, V]{}
}

// Node returns the node at the iterator's current position, tombstone or
// not.
func (it *LevelOrderIterator[K, V]) Node() *llrbt.Node[K, V] {
	return it.queue[0]
}

// Next advances to the next node in breadth-first order.
func (it *LevelOrderIterator[K, V]) Next() {
	n := it.queue[0]
	it.queue = it.queue[1:]
	if n.Left() != nil {
		it.queue = append(it.queue, n.Left())
	}
	if n.Right() != nil {
		it.queue = append(it.queue, n.Right())
	}
}

// Equal reports whether two level-order iterators are at the same
// position.
func (it LevelOrderIterator[K, V]) Equal(other LevelOrderIterator[K, V]) bool {
	if len(it.queue) == 0 || len(other.queue) == 0 {
		return len(it.queue) == len(other.queue)
	}
	return it.queue[0] == other.queue[0]
}

// StructuralIterator walks every node, live or tombstone, in the same
// ascending in-order sequence as Iterator but without skipping
// tombstones. It exists for the printer/checker external-collaborator
// contract (see NodeView) and debugging: callers that need to see the
// whole tree's shape, not just its logical contents.
type StructuralIterator[K, V any] struct {
	stack []*llrbt.Node[K, V]
}

// BeginStructuralInOrder returns a StructuralIterator at the first node
// in ascending order, live or dead.
func (m *Map[K, V]) BeginStructuralInOrder() StructuralIterator[K, V] {
	return StructuralIterator[K, V]{stack: pushLeftSpine[K, V](nil, m.Root())}
}

// EndStructuralInOrder returns the past-the-end StructuralIterator
// sentinel.
func (m *Map[K, V]) EndStructuralInOrder() StructuralIterator[K, V] {
	return StructuralIterator[K, V]{}
}

// Node returns the node at the iterator's current position.
func (it *StructuralIterator[K, V]) Node() *llrbt.Node[K, V] {
	return it.stack[len(it.stack)-1]
}

// Next advances to the next node in ascending order, tombstone or not.
func (it *StructuralIterator[K, V]) Next() {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if n.Right() != nil {
		it.stack = pushLeftSpine(it.stack, n.Right())
	}
}

// Equal reports whether two structural iterators are at the same
// position.
func (it StructuralIterator[K, V]) Equal(other StructuralIterator[K, V]) bool {
	if len(it.stack) == 0 || len(other.stack) == 0 {
		return len(it.stack) == len(other.stack)
	}
	return it.top() == other.top()
}

func (it *StructuralIterator[K, V]) top() *llrbt.Node[K, V] {
	return it.stack[len(it.stack)-1]
}
