package diff

import (
	"reflect"
	"sync"
)

// equalityFunc decides equality for one scalar type.
type equalityFunc func(left, right reflect.Value) bool

// comparators caches the equality decision per scalar type. The capability —
// three-way ordering, equality method, direct comparability, or structural
// fallback — is chosen once per type and reused for every comparison.
var comparators sync.Map // reflect.Type -> equalityFunc

// compareScalars compares two present scalar values. Equal values leave no
// trace; unequal ones are recorded as an Equality divergence.
func compareScalars(p pair, rec *recorder) bool {
	if p.left.Type() == p.right.Type() && scalarEquality(p.left.Type())(p.left, p.right) {
		return true
	}

	rec.record(p, Equality)

	return false
}

func scalarEquality(t reflect.Type) equalityFunc {
	if cached, ok := comparators.Load(t); ok {
		return cached.(equalityFunc) //nolint:forcetypeassert // only equalityFuncs are stored
	}

	chosen := chooseEquality(t)
	comparators.Store(t, chosen)

	return chosen
}

// chooseEquality picks the comparison capability for t, strongest first:
// a three-way ordering method means equal iff the comparison yields zero; an
// equality method is taken at its word; directly comparable types use the
// language's own equality; everything else falls back to structural equality.
func chooseEquality(t reflect.Type) equalityFunc {
	if method, ok := orderingMethod(t); ok {
		return func(left, right reflect.Value) bool {
			return method.Func.Call([]reflect.Value{left, right})[0].Int() == 0
		}
	}

	if method, ok := equalityMethod(t); ok {
		return func(left, right reflect.Value) bool {
			return method.Func.Call([]reflect.Value{left, right})[0].Bool()
		}
	}

	if t.Comparable() {
		return reflect.Value.Equal
	}

	return func(left, right reflect.Value) bool {
		return reflect.DeepEqual(left.Interface(), right.Interface())
	}
}
