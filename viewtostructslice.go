package tablestate

import (
	"fmt"
	"reflect"
	"slices"
)

// ViewToStructSlice converts the rows of view to a slice of structs
// by assigning every cell to the struct field named like its column
// according to naming. PathFieldNaming is used if naming is nil.
// View columns without struct field are ignored.
//
// requiredCols must be present in the view and as named struct fields,
// else an error is returned.
//
// Cells are assigned with AssignValue and after every assignment
// CallValidateMethod is called with the struct field.
// Errors are wrapped with the row index and column title.
func ViewToStructSlice[T any](view View, naming *StructFieldNaming, requiredCols ...string) ([]T, error) {
	rowType := reflect.TypeFor[T]()
	structType := rowType
	if rowType.Kind() == reflect.Pointer {
		structType = rowType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("slice element type %s is not a struct or pointer to struct", rowType)
	}
	if naming == nil {
		naming = &PathFieldNaming
	}

	viewCols := view.Columns()
	if len(requiredCols) > 0 {
		v := reflect.New(structType).Elem()
		for _, requiredCol := range requiredCols {
			if !slices.Contains(viewCols, requiredCol) {
				return nil, fmt.Errorf("required column %q not found in view %q", requiredCol, view.Title())
			}
			if _, ok := naming.StructFieldByName(v, requiredCol); !ok {
				return nil, fmt.Errorf("required column %q not found as field of %s", requiredCol, structType)
			}
		}
	}

	reflectView := AsReflectCellView(view)
	rows := make([]T, view.NumRows())
	for row := range rows {
		rowStruct := reflect.ValueOf(&rows[row]).Elem()
		if rowType.Kind() == reflect.Pointer {
			rowStruct.Set(reflect.New(structType))
			rowStruct = rowStruct.Elem()
		}
		for col, title := range viewCols {
			dst, ok := naming.StructFieldByName(rowStruct, title)
			if !ok {
				continue
			}
			err := AssignValue(dst, reflectView.ReflectCell(row, col))
			if err == nil {
				err = CallValidateMethod(dst)
			}
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, title, err)
			}
		}
	}
	return rows, nil
}

// CallValidateMethod calls the `Validate() error` or `Valid() bool`
// method of v.Interface() if available and v is valid.
func CallValidateMethod(v reflect.Value) error {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	switch x := v.Interface().(type) {
	case interface{ Validate() error }:
		return x.Validate()
	case interface{ Valid() bool }:
		if !x.Valid() {
			return fmt.Errorf("value %#v of type %T is not valid", x, x)
		}
	}
	return nil
}
