package diff

import (
	"reflect"
	"sync"
)

// class is the comparison strategy chosen for a runtime type.
type class int

const (
	// classScalar covers directly comparable values: primitive kinds,
	// comparable arrays, types carrying an ordering or equality capability,
	// and, as a fallback, anything that fits no other branch (maps, funcs,
	// channels) — those are compared atomically by structural equality.
	classScalar class = iota

	// classSequence covers slices and non-comparable arrays, walked
	// position by position.
	classSequence

	// classComposite covers structs, walked field by field.
	classComposite
)

// classes caches the chosen class per runtime type so classification runs
// once per type, not once per comparison.
var classes sync.Map // reflect.Type -> class

// classify picks the comparison strategy for t. Scalar classification takes
// precedence over sequence, so a comparable array — a value type that also
// happens to be iterable — is treated as a single scalar.
func classify(t reflect.Type) class {
	if cached, ok := classes.Load(t); ok {
		return cached.(class) //nolint:forcetypeassert // only class values are stored
	}

	chosen := chooseClass(t)
	classes.Store(t, chosen)

	return chosen
}

func chooseClass(t reflect.Type) class {
	if isScalarType(t) {
		return classScalar
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		return classSequence
	case reflect.Struct:
		return classComposite
	}

	return classScalar
}

// isScalarType reports whether t is compared as a single value.
func isScalarType(t reflect.Type) bool {
	switch t.Kind() { //nolint:exhaustive
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return t.Comparable()
	}

	if _, ok := orderingMethod(t); ok {
		return true
	}

	_, ok := equalityMethod(t)

	return ok
}

// orderingMethod looks up a three-way comparison capability on t: a value
// receiver method "Compare" taking one argument of type t and returning an
// integer. time.Time and the wrapper types in the compare package satisfy it.
func orderingMethod(t reflect.Type) (reflect.Method, bool) {
	method, ok := t.MethodByName("Compare")
	if !ok {
		return reflect.Method{}, false
	}

	sig := method.Type
	if sig.NumIn() != 2 || sig.NumOut() != 1 {
		return reflect.Method{}, false
	}

	if sig.In(1) != t || sig.Out(0).Kind() != reflect.Int {
		return reflect.Method{}, false
	}

	return method, true
}

// equalityMethod looks up an equality-only capability on t: a value receiver
// method "Equals" (or "Equal", as the standard library spells it) taking one
// argument of type t and returning a bool.
func equalityMethod(t reflect.Type) (reflect.Method, bool) {
	for _, name := range []string{"Equals", "Equal"} {
		method, ok := t.MethodByName(name)
		if !ok {
			continue
		}

		sig := method.Type
		if sig.NumIn() != 2 || sig.NumOut() != 1 {
			continue
		}

		if sig.In(1) != t || sig.Out(0).Kind() != reflect.Bool {
			continue
		}

		return method, true
	}

	return reflect.Method{}, false
}

// isAbsent reports whether v holds no value: an untyped nil, or a nil
// pointer, interface, slice, map, function, or channel.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}

	return false
}

// indirect unwraps interfaces and pointers down to the value they carry,
// stopping at the first nil link. No path component is added for the
// unwrapping; a pointer to a struct and the struct itself diff identically.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() {
		kind := v.Kind()
		if kind != reflect.Pointer && kind != reflect.Interface {
			break
		}

		if v.IsNil() {
			break
		}

		v = v.Elem()
	}

	return v
}
