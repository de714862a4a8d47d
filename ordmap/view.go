package ordmap

import "github.com/devnw/llrbmap/llrbt"

// NodeView is the read-only contract a printer or structural checker
// needs to render or validate a tree without importing package llrbt
// directly or gaining any mutation access. It is the Go shape of the
// spec's external-collaborator printer/checker interface.
type NodeView[K, V any] interface {
	Key() K
	Value() V
	IsNil() bool
	IsDead() bool
	// Glyph is the raw flags byte from spec.md §6's debug rendering
	// contract: 0x00 black-alive, 0x01 black-dead, 0x02 red-alive,
	// 0x03 red-dead.
	Glyph() byte
	GlyphRune() rune
	Left() NodeView[K, V]
	Right() NodeView[K, V]
}

// nodeView adapts *llrbt.Node[K,V] to NodeView[K,V]. It exists because
// Node.Left/Node.Right return *llrbt.Node[K,V], and Go methods can't be
// covariant: an interface method declared to return NodeView[K,V] cannot
// be satisfied by a concrete method returning a different named type,
// even one that also implements the interface. nodeView wraps each
// child on demand instead.
type nodeView[K, V any] struct {
	n *llrbt.Node[K, V]
}

func (v nodeView[K, V]) Key() K          { return v.n.Key() }
func (v nodeView[K, V]) Value() V        { return v.n.Value() }
func (v nodeView[K, V]) IsNil() bool     { return v.n.IsNil() }
func (v nodeView[K, V]) IsDead() bool    { return v.n.IsDead() }
func (v nodeView[K, V]) Glyph() byte     { return v.n.Glyph() }
func (v nodeView[K, V]) GlyphRune() rune { return v.n.GlyphRune() }

func (v nodeView[K, V]) Left() NodeView[K, V] {
	return nodeView[K, V]{n: v.n.Left()}
}

func (v nodeView[K, V]) Right() NodeView[K, V] {
	return nodeView[K, V]{n: v.n.Right()}
}

// RootView returns a NodeView over the map's root, for handing to a
// printer or checker without exposing package llrbt. A nil-rooted
// (empty) map returns a NodeView whose IsNil is true.
func (m *Map[K, V]) RootView() NodeView[K, V] {
	return nodeView[K, V]{n: m.Root()}
}
