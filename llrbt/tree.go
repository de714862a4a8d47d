package llrbt

import (
	"fmt"
	"log/slog"
)

// LessFunc defines the ordering of keys in the tree. It should return true
// if a is strictly less than b, and must implement a strict weak ordering
// (irreflexive, transitive). This is shaped exactly like the teacher's
// bst.LessFunc[K].
type LessFunc[K any] func(a, b K) bool

const (
	diagRotateLeftBadPivot  = " ** RotateLeft called with black right child"
	diagRotateRightBadPivot = " ** RotateRight called with black left child"
)

// Tree is the balanced-tree engine: a root node, the comparator that
// orders its keys, and a diagnostic sink for misused rotations, which are
// logged and not fatal. Allocation failure is not reported through the
// sink (see DESIGN.md Open Question 3). Tree flips and reads each node's
// liveness bit but keeps no live-entry count and never rehashes on its
// own; that bookkeeping belongs to ordmap.Map, which embeds *Tree.
type Tree[K, V any] struct {
	root *Node[K, V]
	less LessFunc[K]
	diag *slog.Logger
}

// Option configures a Tree at construction time.
type Option[K, V any] func(*Tree[K, V])

// WithDiagnostics overrides the diagnostic sink used for rotation-misuse
// messages; no allocation-failure message is ever written to it. The
// default is slog.Default().
func WithDiagnostics[K, V any](logger *slog.Logger) Option[K, V] {
	return func(t *Tree[K, V]) {
		if logger != nil {
			t.diag = logger
		}
	}
}

// New creates an empty Tree ordered by less.
func New[K, V any](less LessFunc[K], opts ...Option[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{less: less, diag: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fresh returns a new, empty Tree sharing this one's comparator and
// diagnostic sink. ordmap.Map.Rehash uses this to build the compacted
// replacement tree.
func (t *Tree[K, V]) Fresh() *Tree[K, V] {
	return &Tree[K, V]{less: t.less, diag: t.diag}
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// KeyEqual reports whether a and b compare equal under the tree's
// comparator: !less(a,b) && !less(b,a).
func (t *Tree[K, V]) KeyEqual(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

func (t *Tree[K, V]) logf(format string, args ...any) {
	if t.diag == nil {
		return
	}
	t.diag.Warn(fmt.Sprintf(format, args...))
}

// rotateLeft requires n.right to be red. It promotes n.right to the new
// subtree root, demotes n to its new left child, and transfers n's color
// to the new root while forcing n red. Calling it on a pivot whose right
// child isn't red is a programming error: it is logged and n is returned
// unchanged, per the spec's "no crash, no state mutation" contract.
func (t *Tree[K, V]) rotateLeft(n *Node[K, V]) *Node[K, V] {
	if n == nil || n.right.isBlack() {
		t.logf(diagRotateLeftBadPivot)
		return n
	}
	x := n.right
	n.right = x.left
	x.left = n
	x.setColor(n.color())
	n.setColor(Red)
	return x
}

// rotateRight is the mirror image of rotateLeft, requiring n.left to be red.
func (t *Tree[K, V]) rotateRight(n *Node[K, V]) *Node[K, V] {
	if n == nil || n.left.isBlack() {
		t.logf(diagRotateRightBadPivot)
		return n
	}
	x := n.left
	n.left = x.right
	x.right = n
	x.setColor(n.color())
	n.setColor(Red)
	return x
}

// flipColors makes n red and both of its children black. It is only
// called when both children are already known to be red.
func (t *Tree[K, V]) flipColors(n *Node[K, V]) {
	n.setColor(Red)
	n.left.setColor(Black)
	n.right.setColor(Black)
}

// repair is the bottom-up LLRB restoration tail shared by rget and
// rinsert, applied in the exact order the spec mandates:
//  1. lean red edges left (rotate left if the right child is red and the
//     left child is not),
//  2. break up consecutive left-leaning reds (rotate right if the left
//     child is red and its own left child is red),
//  3. push a momentary 4-node up (flip colors if both children are red).
func (t *Tree[K, V]) repair(n *Node[K, V]) *Node[K, V] {
	if n.right.isRed() && n.left.isBlack() {
		n = t.rotateLeft(n)
	}
	if n.left.isRed() && n.left.Left().isRed() {
		n = t.rotateRight(n)
	}
	if n.left.isRed() && n.right.isRed() {
		t.flipColors(n)
	}
	return n
}

// rget is the recursive primitive behind Get/operator[]: it descends to
// key, creating a default-valued red/alive node if absent, and resurrects
// (marks alive) a tombstone found at an equal key without overwriting its
// value. It returns the (possibly rewritten) subtree root and the node
// located at key.
func (t *Tree[K, V]) rget(n *Node[K, V], key K) (*Node[K, V], *Node[K, V]) {
	if n == nil {
		nn := newNode[K, V](key)
		return nn, nn
	}

	var loc *Node[K, V]
	switch {
	case t.less(key, n.key):
		n.left, loc = t.rget(n.left, key)
	case t.less(n.key, key):
		n.right, loc = t.rget(n.right, key)
	default:
		n.setAlive()
		loc = n
	}
	return t.repair(n), loc
}

// rinsert is the recursive primitive behind rehash's rebuild: it
// descends to key, creating a node if absent, and overwrites the value
// and marks alive on an equal key (whether or not it was a tombstone).
func (t *Tree[K, V]) rinsert(n *Node[K, V], key K, value V) *Node[K, V] {
	if n == nil {
		nn := newNode[K, V](key)
		nn.value = value
		return nn
	}

	switch {
	case t.less(key, n.key):
		n.left = t.rinsert(n.left, key, value)
	case t.less(n.key, key):
		n.right = t.rinsert(n.right, key, value)
	default:
		n.value = value
		n.setAlive()
	}
	return t.repair(n)
}

// Get locates key, creating a default-valued live entry if absent and
// resurrecting any tombstone found at key, then returns the node. The
// root is forced black before returning, per the spec.
func (t *Tree[K, V]) Get(key K) *Node[K, V] {
	var loc *Node[K, V]
	t.root, loc = t.rget(t.root, key)
	t.root.setColor(Black)
	return loc
}

// PutAt locates key (creating or resurrecting as Get does) and
// overwrites its value, matching the spec's definition of put as
// "get the reference and assign". It returns the located node.
func (t *Tree[K, V]) PutAt(key K, value V) *Node[K, V] {
	n := t.Get(key)
	*n.ValuePtr() = value
	return n
}

// RehashInsert is the top-level rinsert call used to rebuild a compacted
// tree from a live in-order sequence. It is exported for ordmap.Map.Rehash;
// direct use on an arbitrary Tree bypasses the tombstone bookkeeping a Map
// would otherwise apply and is normally only correct when building a fresh
// tree via Fresh.
func (t *Tree[K, V]) RehashInsert(key K, value V) {
	t.root = t.rinsert(t.root, key, value)
	t.root.setColor(Black)
}

// Search performs a plain BST descent for key and returns the node found
// (alive or dead), or nil if key is absent. It never allocates or
// rebalances.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Path performs a plain BST descent for key and returns the ancestor
// stack an in-order iterator positioned at key would carry: every
// ancestor where the descent went left, in descent order, followed by
// the matching node itself on top. It returns nil if key is absent or
// the matching node is a tombstone, so that ordmap.Map.Includes can hand
// back an "end" iterator in both cases.
func (t *Tree[K, V]) Path(key K) []*Node[K, V] {
	var stack []*Node[K, V]
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			stack = append(stack, n)
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			if n.IsDead() {
				return nil
			}
			return append(stack, n)
		}
	}
	return nil
}

// Erase performs a plain BST descent for key and, if found, flips its
// liveness bit to dead. No rebalancing is performed. It is a silent
// no-op if key is absent or already dead. It reports whether a live
// entry was found and marked dead.
func (t *Tree[K, V]) Erase(key K) bool {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			if n.IsDead() {
				return false
			}
			n.setDead()
			return true
		}
	}
	return false
}

// Clear discards the entire tree. Go's garbage collector reclaims the
// nodes; there is no manual free step to perform.
func (t *Tree[K, V]) Clear() {
	t.root = nil
}

// Height returns the edge-count of the longest root-to-leaf path, or -1
// for an empty tree.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return -1
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Clone returns a structural clone of the tree: every node is reallocated
// with an identical key, value, and flags byte (preserving both color and
// tombstones), recursively. The clone shares no node with the original.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root: cloneNode(t.root),
		less: t.less,
		diag: t.diag,
	}
}

// IsTreeValid checks the BST-order and LLRB invariants (spec §3.1-§3.5)
// over the whole tree, including tombstoned nodes (tombstones don't
// affect structural invariants). It returns nil if the tree is valid, or
// an error describing the first violation found.
func (t *Tree[K, V]) IsTreeValid() error {
	if t.root.isRed() {
		return fmt.Errorf("root node is red")
	}
	_, err := checkNode(t, t.root, nil, nil)
	return err
}

func checkNode[K, V any](t *Tree[K, V], n, lowerBound, upperBound *Node[K, V]) (blackHeight int, err error) {
	if n == nil {
		return 0, nil
	}
	if lowerBound != nil && !t.less(lowerBound.key, n.key) {
		return 0, fmt.Errorf("key %v violates BST ordering against lower bound %v", n.key, lowerBound.key)
	}
	if upperBound != nil && !t.less(n.key, upperBound.key) {
		return 0, fmt.Errorf("key %v violates BST ordering against upper bound %v", n.key, upperBound.key)
	}
	if n.right.isRed() && n.left.isBlack() {
		return 0, fmt.Errorf("key %v: red right child with non-red left child (not left-leaning)", n.key)
	}
	if n.left.isRed() && n.left.Left().isRed() {
		return 0, fmt.Errorf("key %v: two consecutive red nodes on the left spine", n.key)
	}

	leftHeight, err := checkNode(t, n.left, lowerBound, n)
	if err != nil {
		return 0, err
	}
	rightHeight, err := checkNode(t, n.right, n, upperBound)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("key %v: black-height mismatch (left %d, right %d)", n.key, leftHeight, rightHeight)
	}
	if n.isBlack() {
		leftHeight++
	}
	return leftHeight, nil
}
