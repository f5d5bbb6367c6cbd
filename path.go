package tablestate

import (
	"reflect"
	"strconv"
	"strings"
)

// ResolvePath resolves a dotted path like "cliente.nombre"
// by descending segment by segment into row.
//
// Pointers and interfaces are dereferenced, struct fields are matched
// using PathFieldNaming, maps with string keys are indexed by the segment,
// and slices or arrays accept decimal index segments.
//
// The result is false if row is nil, the path is empty,
// or any segment can't be resolved. ResolvePath never panics
// for missing or nil intermediate values.
func ResolvePath(row any, path string) (reflect.Value, bool) {
	if path == "" {
		return reflect.Value{}, false
	}
	return resolvePathSegments(reflect.ValueOf(row), strings.Split(path, "."))
}

func resolvePathSegments(val reflect.Value, segments []string) (reflect.Value, bool) {
	for _, segment := range segments {
		val = indirect(val)
		if !val.IsValid() {
			return reflect.Value{}, false
		}
		var ok bool
		val, ok = resolveSegment(val, segment)
		if !ok {
			return reflect.Value{}, false
		}
	}
	val = indirect(val)
	return val, val.IsValid()
}

func resolveSegment(val reflect.Value, segment string) (reflect.Value, bool) {
	switch val.Kind() {
	case reflect.Struct:
		return PathFieldNaming.StructFieldByName(val, segment)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		elem := val.MapIndex(reflect.ValueOf(segment).Convert(val.Type().Key()))
		return elem, elem.IsValid()

	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= val.Len() {
			return reflect.Value{}, false
		}
		return val.Index(index), true
	}
	return reflect.Value{}, false
}

// indirect dereferences pointers and interfaces
// and returns an invalid value for nil.
func indirect(val reflect.Value) reflect.Value {
	for val.IsValid() && (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			return reflect.Value{}
		}
		val = val.Elem()
	}
	return val
}
