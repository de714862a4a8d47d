package ordmap

import "reflect"

// deepEqual compares two values of an unconstrained type parameter. V
// carries no comparable constraint (the spec's value type is a plain
// "any"), so == is not available; reflect.DeepEqual is the same escape
// hatch the teacher reaches for in bst.Node.String/IsValueNil when it
// needs to inspect an any-typed field it can't otherwise compare.
func deepEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}
