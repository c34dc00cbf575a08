package state

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// cmpEqual is the default compareInput/compareOutput implementation: it
// is what "referential equality" degrades to once values are boxed into
// any at the resolver boundary. go-cmp gives a correct deep comparison
// for the common case (scalars, structs, slices of comparable leaf
// values); it panics on types carrying unexported fields it can't see
// into, so that case falls back to reflect.DeepEqual, which still
// answers the question ("are these semantically the same value")
// even though it can't exploit an Equal method the way cmp.Equal can.
func cmpEqual(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// pointwiseEqual compares two slices element-by-element with eq,
// treating differing lengths as unequal. This is the default
// compareOutput for a facet defined without a combine function.
func pointwiseEqual(a, b []any, eq func(any, any) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
