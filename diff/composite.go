package diff

import (
	"reflect"
	"sync"
)

// fieldInfo is one readable field of a composite type.
type fieldInfo struct {
	name  string
	index int
}

// fieldTables caches the exported-field list per struct type, so reflective
// enumeration happens once per type rather than once per value.
var fieldTables sync.Map // reflect.Type -> []fieldInfo

// compareComposites compares two present composite values field by field,
// recursing into each exported field pair. The right side is assumed to share
// the left side's declared shape; that precondition is not re-verified here.
// All fields are visited even after one diverges, so every divergent field is
// recorded. A struct with no exported fields compares equal.
func compareComposites(p pair, rec *recorder) bool {
	equal := true

	for _, field := range exportedFields(p.left.Type()) {
		child := pair{
			left:  p.left.Field(field.index),
			right: p.right.Field(field.index),
			path:  p.path + "." + field.name,
		}

		if !dispatch(child, rec) {
			equal = false
		}
	}

	return equal
}

func exportedFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldTables.Load(t); ok {
		return cached.([]fieldInfo) //nolint:forcetypeassert // only field lists are stored
	}

	fields := make([]fieldInfo, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fields = append(fields, fieldInfo{name: field.Name, index: i})
	}

	fieldTables.Store(t, fields)

	return fields
}
