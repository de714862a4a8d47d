package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_skipsTombstonesTransparently(t *testing.T) {
	m := New[int, struct{}](intLess)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		m.Put(k, struct{}{})
	}
	m.Erase(2)
	m.Erase(6)

	var keys []int
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7}, keys)
}

func TestIterator_eraseCurrentKeyDoesNotInvalidate(t *testing.T) {
	// per the iterator contract, erasing the iterator's own current key
	// does not invalidate it (the iterator keeps referencing the
	// now-dead node); only structural mutation (clear/rehash/rebalancing
	// get-or-put) invalidates outstanding iterators.
	m := New[int, struct{}](intLess)
	m.Put(1, struct{}{}).Put(2, struct{}{}).Put(3, struct{}{})

	it := m.Begin()
	require.Equal(t, 1, it.Key())
	m.Erase(1)
	it.Next()
	assert.Equal(t, 2, it.Key())
}

func TestReverseIterator_skipsTombstonesTransparently(t *testing.T) {
	m := New[int, struct{}](intLess)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		m.Put(k, struct{}{})
	}
	m.Erase(2)
	m.Erase(6)

	var keys []int
	for it := m.RBegin(); !it.Equal(m.REnd()); it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{7, 5, 4, 3, 1}, keys)
}

func TestIterator_emptyTreeIsEnd(t *testing.T) {
	m := New[int, struct{}](intLess)
	assert.True(t, m.Begin().Equal(m.End()))
	assert.True(t, m.RBegin().Equal(m.REnd()))
	assert.True(t, m.BeginLevelOrder().Equal(m.EndLevelOrder()))
	assert.True(t, m.BeginStructuralInOrder().Equal(m.EndStructuralInOrder()))
}

func TestIterator_Equal_comparesByNodeIdentity(t *testing.T) {
	m := New[int, struct{}](intLess)
	m.Put(1, struct{}{})

	a := m.Begin()
	b := m.Begin()
	assert.True(t, a.Equal(b))

	m.Put(2, struct{}{})
	c := m.Begin()
	assert.True(t, a.Equal(c), "Begin from the same leftmost key must still compare equal")
}

func TestLevelOrderIterator_breadthFirstOrder(t *testing.T) {
	m := New[int, struct{}](intLess)
	for i := 1; i <= 15; i++ {
		m.Put(i, struct{}{})
	}

	root := m.Root()
	require.NotNil(t, root)

	it := m.BeginLevelOrder()
	first := it.Node()
	assert.Same(t, root, first, "level-order must start at the root")

	count := 0
	for ; !it.Equal(m.EndLevelOrder()); it.Next() {
		count++
	}
	assert.Equal(t, m.NumNodes(), count)
}

func TestFind(t *testing.T) {
	m := New[int, string](intLess)
	m.Put(1, "one").Put(2, "two")

	it := m.Find(2)
	require.False(t, it.Equal(m.End()))
	assert.Equal(t, "two", it.Value())

	assert.True(t, m.Find(99).Equal(m.End()))
}
