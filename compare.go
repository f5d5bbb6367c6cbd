package tablestate

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

type valueClass int

const (
	classAbsent valueClass = iota
	classBool
	classNumber
	classString
	classOrdered
	classOther
)

// CompareValues compares two values resolved from rows
// and returns -1, 0, or +1.
//
// Numbers compare numerically across all integer and float kinds,
// strings lexicographically and bools with false before true.
// Types with a Compare or Cmp method taking their own type
// and returning int, like time.Time or decimal.Decimal, use that method.
// Invalid or nil values are absent and sort before all present values.
// Values of different classes are ordered by class:
// absent, bool, number, string, ordered types, anything else.
// Other values are compared by their fmt.Sprint representation.
func CompareValues(a, b reflect.Value) int {
	a, b = indirect(a), indirect(b)
	ca, cb := classify(a), classify(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case classAbsent:
		return 0
	case classBool:
		return compareBools(a.Bool(), b.Bool())
	case classNumber:
		return compareNumbers(a, b)
	case classString:
		return strings.Compare(a.String(), b.String())
	case classOrdered:
		if a.Type() == b.Type() {
			return sign(compareMethod(a).Call([]reflect.Value{b})[0].Int())
		}
	}
	return strings.Compare(sprintValue(a), sprintValue(b))
}

func classify(v reflect.Value) valueClass {
	if !v.IsValid() {
		return classAbsent
	}
	if compareMethod(v).IsValid() {
		return classOrdered
	}
	switch v.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	}
	return classOther
}

// compareMethod returns the Compare or Cmp method of v
// if it has the signature func(T) int where T is the type of v.
func compareMethod(v reflect.Value) reflect.Value {
	if !v.CanInterface() {
		return reflect.Value{}
	}
	for _, name := range [...]string{"Compare", "Cmp"} {
		m := v.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		t := m.Type()
		if t.NumIn() == 1 && t.In(0) == v.Type() && t.NumOut() == 1 && t.Out(0).Kind() == reflect.Int {
			return m
		}
	}
	return reflect.Value{}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func sign(i int64) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}

// sprintValue formats v with fmt.Sprint
// or returns an empty string for absent or inaccessible values.
func sprintValue(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() || !v.CanInterface() {
		return ""
	}
	return fmt.Sprint(v.Interface())
}
