package tablestate

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	typeOfTime            = reflect.TypeFor[time.Time]()
	typeOfTextUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// AssignValue assigns src to dst converting between types
// as needed to load table cells into typed struct fields.
//
// Conversions are tried in this order:
//   - nil and values with an IsNull() bool method returning true
//     assign the zero value
//   - types convertible with reflect.Value.Convert
//   - empty or whitespace only strings assign the zero value
//   - strings are parsed as time.Time with ParseTime
//   - strings are unmarshalled into types implementing
//     encoding.TextUnmarshaler like decimal.Decimal or uuid.UUID
//   - non nil pointers are dereferenced
//   - numbers are formatted and unmarshalled into
//     encoding.TextUnmarshaler implementations
//   - bools, numbers and strings are converted between each other,
//     with surrounding whitespace of strings trimmed
//   - any value is formatted as string with
//     encoding.TextMarshaler, fmt.Stringer or fmt.Sprint
//   - pointers are allocated for the assignment of the pointed to type
//
// A wrapped errors.ErrUnsupported is returned if no conversion applies.
func AssignValue(dst, src reflect.Value) error {
	if !dst.IsValid() || !dst.CanSet() {
		return errors.New("destination value is not settable")
	}
	if ValueIsNil(src) {
		dst.SetZero()
		return nil
	}
	if nullable, ok := src.Interface().(interface{ IsNull() bool }); ok && nullable.IsNull() {
		dst.SetZero()
		return nil
	}
	if src.Kind() == reflect.Interface {
		src = src.Elem()
	}
	var (
		srcType = src.Type()
		srcKind = srcType.Kind()
		dstType = dst.Type()
		dstKind = dstType.Kind()
	)

	if srcType.ConvertibleTo(dstType) && !isNumberStringConversion(srcKind, dstKind) {
		// Converting a slice to a longer array panics
		if srcKind == reflect.Slice && dstKind == reflect.Array && src.Len() < dstType.Len() {
			return fmt.Errorf("cannot convert slice of length %d to %s", src.Len(), dstType)
		}
		dst.Set(src.Convert(dstType))
		return nil
	}

	if srcKind == reflect.String {
		str := strings.TrimSpace(src.String())
		if str == "" {
			dst.SetZero()
			return nil
		}
		// time.Time is also a TextUnmarshaler but only for RFC 3339
		if dstType == typeOfTime {
			t, _, err := ParseTime(str)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(t))
			return nil
		}
		if dst.CanAddr() && reflect.PointerTo(dstType).Implements(typeOfTextUnmarshaler) {
			return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str))
		}
	}

	if srcKind == reflect.Pointer {
		return AssignValue(dst, src.Elem())
	}

	if (isInt(srcKind) || isUint(srcKind) || isFloat(srcKind)) && dst.CanAddr() && reflect.PointerTo(dstType).Implements(typeOfTextUnmarshaler) {
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText(fmt.Append(nil, src.Interface()))
	}

	switch dstKind {
	case reflect.Bool:
		switch {
		case isInt(srcKind):
			dst.SetBool(src.Int() != 0)
			return nil
		case isUint(srcKind):
			dst.SetBool(src.Uint() != 0)
			return nil
		case isFloat(srcKind):
			dst.SetBool(src.Float() != 0)
			return nil
		case srcKind == reflect.String:
			b, err := strconv.ParseBool(strings.TrimSpace(src.String()))
			if err != nil {
				return err
			}
			dst.SetBool(b)
			return nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch srcKind {
		case reflect.Bool:
			dst.SetInt(boolToInt(src.Bool()))
			return nil
		case reflect.String:
			i, err := strconv.ParseInt(strings.TrimSpace(src.String()), 10, 64)
			if err != nil {
				return err
			}
			if dst.OverflowInt(i) {
				return fmt.Errorf("%d overflows %s", i, dstType)
			}
			dst.SetInt(i)
			return nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch srcKind {
		case reflect.Bool:
			dst.SetUint(uint64(boolToInt(src.Bool())))
			return nil
		case reflect.String:
			u, err := strconv.ParseUint(strings.TrimSpace(src.String()), 10, 64)
			if err != nil {
				return err
			}
			if dst.OverflowUint(u) {
				return fmt.Errorf("%d overflows %s", u, dstType)
			}
			dst.SetUint(u)
			return nil
		}

	case reflect.Float32, reflect.Float64:
		switch srcKind {
		case reflect.Bool:
			dst.SetFloat(float64(boolToInt(src.Bool())))
			return nil
		case reflect.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(src.String()), 64)
			if err != nil {
				return err
			}
			dst.SetFloat(f)
			return nil
		}

	case reflect.String:
		switch x := src.Interface().(type) {
		case encoding.TextMarshaler:
			txt, err := x.MarshalText()
			if err != nil {
				return err
			}
			dst.SetString(string(txt))
		case fmt.Stringer:
			dst.SetString(x.String())
		default:
			dst.SetString(fmt.Sprint(x))
		}
		return nil

	case reflect.Pointer:
		newDst := reflect.New(dstType.Elem())
		if err := AssignValue(newDst.Elem(), src); err != nil {
			return err
		}
		dst.Set(newDst)
		return nil
	}

	return fmt.Errorf("%w: assigning %s to %s", errors.ErrUnsupported, srcType, dstType)
}

// isNumberStringConversion reports conversions that reflect allows
// but that interpret integers as runes instead of formatting them.
func isNumberStringConversion(srcKind, dstKind reflect.Kind) bool {
	return dstKind == reflect.String && (isInt(srcKind) || isUint(srcKind))
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
