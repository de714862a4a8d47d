package ordmap

import "iter"

// All returns a range-over-func sequence of the map's live entries in
// ascending key order. It is an additive convenience built directly on
// Iterator — it introduces no semantics Begin/End/Next don't already
// have, just a for-range-friendly shape for Go 1.23+.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); !it.Equal(m.End()); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns a range-over-func sequence of the map's live keys in
// ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Begin(); !it.Equal(m.End()); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}
