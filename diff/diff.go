// Package diff performs a structural, order-preserving deep comparison of two
// values of the same declared shape and reports every point of divergence as a
// path-qualified record, rather than stopping at the first difference.
//
// The traversal classifies every value pair as a null-pair, a scalar, a
// sequence, or a composite, dispatches to the matching comparison strategy,
// and keeps walking past failures so a single call reveals all divergences.
// Results come back in depth-first, left-to-right discovery order.
//
// Example:
//
//	type Address struct {
//	    City string
//	    Zip  string
//	}
//
//	equal, results := diff.Compare(
//	    Address{City: "Oakland", Zip: "94607"},
//	    Address{City: "Berkeley", Zip: "94607"},
//	)
//	// equal == false
//	// results[0].Path == "Root.City"
//
// The comparison is synchronous and allocates no shared state between calls,
// so concurrent calls on disjoint inputs are safe. There is no cycle
// detection: a self-referential value graph recurses without bound, matching
// the depth of the input. Callers own the acyclicity of what they pass in.
package diff

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amp-labs/deepdiff/optional"
)

// rootPath is the path assigned to the top-level value pair.
const rootPath = "Root"

// absentLabel is how a missing side renders inside divergence messages.
const absentLabel = "NULL"

// Kind identifies why a pair of values was judged divergent.
type Kind int

const (
	// NullAccordancy means exactly one side of the pair was absent.
	NullAccordancy Kind = iota

	// Equality means both sides were present scalars and compared unequal.
	Equality

	// CollectionLength means both sides were sequences of different lengths.
	CollectionLength
)

// String returns the name of the divergence kind.
func (k Kind) String() string {
	switch k {
	case NullAccordancy:
		return "NullAccordancy"
	case Equality:
		return "Equality"
	case CollectionLength:
		return "CollectionLength"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler so divergence kinds serialize
// by name rather than by ordinal.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var errUnknownKind = errors.New("unknown divergence kind")

// UnmarshalText implements encoding.TextUnmarshaler, accepting the names
// produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "NullAccordancy":
		*k = NullAccordancy
	case "Equality":
		*k = Equality
	case "CollectionLength":
		*k = CollectionLength
	default:
		return fmt.Errorf("%w: %q", errUnknownKind, text)
	}

	return nil
}

// Divergence is one recorded point of inequality between the two compared
// values. Path locates it within the root object graph (e.g.
// "Root.Items[2].Name"), Message is the human-readable description, and
// Left/Right carry the raw values for programmatic inspection. An absent side
// is optional.None.
type Divergence struct {
	Path    string              `json:"path"`
	Kind    Kind                `json:"kind"`
	Left    optional.Value[any] `json:"left"`
	Right   optional.Value[any] `json:"right"`
	Message string              `json:"message"`
}

// pair is the unit of traversal work: the two values under comparison at one
// location in the graph. A fresh pair is built for every node visited and is
// never mutated afterwards.
type pair struct {
	left  reflect.Value
	right reflect.Value
	path  string
}

// recorder accumulates divergences for a single Compare call, in discovery
// order. It is owned exclusively by that call.
type recorder struct {
	divergences []Divergence
}

// record appends a divergence for the given pair. Every recorded divergence
// carries a non-empty message.
func (r *recorder) record(p pair, kind Kind) {
	left := sideValue(p.left)
	right := sideValue(p.right)

	r.divergences = append(r.divergences, Divergence{
		Path:    p.path,
		Kind:    kind,
		Left:    left,
		Right:   right,
		Message: describe(kind, p.path, left, right),
	})
}

// empty returns true if no divergence has been recorded.
func (r *recorder) empty() bool {
	return len(r.divergences) == 0
}

// Compare deeply compares left and right and reports every divergence found.
// It returns true together with an empty slice when the two values are
// structurally equal; otherwise it returns false and one Divergence per point
// of inequality, ordered depth-first, left-to-right.
//
// The type parameter pins both arguments to the same declared shape. Values
// reached through interface-typed fields are compared by their dynamic types;
// feeding genuinely different shapes through such fields is outside the
// contract and may panic during field access.
func Compare[T any](left, right T) (bool, []Divergence) {
	rec := &recorder{}

	dispatch(pair{
		left:  reflect.ValueOf(left),
		right: reflect.ValueOf(right),
		path:  rootPath,
	}, rec)

	return rec.empty(), rec.divergences
}

// dispatch decides equality for one pair and recurses as needed, appending to
// the recorder for every divergence found. It returns true iff the pair and
// all of its descendants are equal.
//
// Absence is settled before any type inspection, since an absent side has no
// runtime type to inspect.
func dispatch(p pair, rec *recorder) bool {
	left := indirect(p.left)
	right := indirect(p.right)

	switch {
	case isAbsent(left) && isAbsent(right):
		return true
	case isAbsent(left) || isAbsent(right):
		rec.record(pair{left: left, right: right, path: p.path}, NullAccordancy)

		return false
	}

	present := pair{left: left, right: right, path: p.path}

	switch classify(left.Type()) {
	case classSequence:
		return compareSequences(present, rec)
	case classComposite:
		return compareComposites(present, rec)
	default:
		return compareScalars(present, rec)
	}
}

// sideValue converts one side of a pair into its optional form: None when the
// side is absent, Some of the underlying value otherwise.
func sideValue(v reflect.Value) optional.Value[any] {
	if isAbsent(v) {
		return optional.None[any]()
	}

	return optional.Some(v.Interface())
}

// describe renders the message for a divergence of the given kind.
func describe(kind Kind, path string, left, right optional.Value[any]) string {
	switch kind {
	case NullAccordancy:
		return fmt.Sprintf(
			"Null accordance of property '%s' is different in instances: left value = '%s', right value = '%s'",
			path, renderSide(left), renderSide(right))
	case CollectionLength:
		return fmt.Sprintf("Property '%s' has different lengths", path)
	default:
		return fmt.Sprintf(
			"Property '%s' is not equal in instances: left value = '%s', right value = '%s'",
			path, renderSide(left), renderSide(right))
	}
}

// renderSide formats one side of a divergence for a message, substituting
// the NULL label for an absent value.
func renderSide(v optional.Value[any]) string {
	val, ok := v.Get()
	if !ok {
		return absentLabel
	}

	return fmt.Sprintf("%v", val)
}
