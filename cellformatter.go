package tablestate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// CellFormatter formats the cell of a View as string.
type CellFormatter interface {
	// FormatCell formats the cell at row and col of view as string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the table format and can be
	// used as is or if it has to be sanitized in some way.
	FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, view View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), false, nil
}

// RawCellString implements CellFormatter by returning
// the underlying string as raw value.
type RawCellString string

func (rawStr RawCellString) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return string(rawStr), true, nil
}

// SprintCellFormatter formats every cell with fmt.Sprint
// and nil or invalid values as empty string.
// Pointers are dereferenced.
type SprintCellFormatter struct{}

func (SprintCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return sprintValue(AsReflectCellView(view).ReflectCell(row, col)), false, nil
}

// FormatCellOrSprint formats a cell using formatter
// and falls back to SprintCellFormatter if formatter is nil
// or returns errors.ErrUnsupported.
func FormatCellOrSprint(ctx context.Context, formatter CellFormatter, view View, row, col int) (str string, raw bool, err error) {
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	if formatter != nil {
		str, raw, err = formatter.FormatCell(ctx, view, row, col)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, raw, err
		}
	}
	return SprintCellFormatter{}.FormatCell(ctx, view, row, col)
}

var _ CellFormatter = new(ReflectTypeCellFormatter)

// ReflectTypeCellFormatter selects a CellFormatter
// by the reflect.Type or reflect.Kind of the cell value.
// Pointer values are also matched by their element type.
//
// nil is a valid *ReflectTypeCellFormatter
// that returns errors.ErrUnsupported for every cell.
type ReflectTypeCellFormatter struct {
	Types   map[reflect.Type]CellFormatter
	Kinds   map[reflect.Kind]CellFormatter
	Default CellFormatter
}

func (f *ReflectTypeCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	if f == nil {
		return "", false, errors.ErrUnsupported
	}
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	cellVal := AsReflectCellView(view).ReflectCell(row, col)
	if cellVal.IsValid() {
		for t := cellVal.Type(); ; t = t.Elem() {
			if typeFmt, ok := f.Types[t]; ok {
				str, raw, err := typeFmt.FormatCell(ctx, view, row, col)
				if !errors.Is(err, errors.ErrUnsupported) {
					return str, raw, err
				}
			}
			if kindFmt, ok := f.Kinds[t.Kind()]; ok {
				str, raw, err := kindFmt.FormatCell(ctx, view, row, col)
				if !errors.Is(err, errors.ErrUnsupported) {
					return str, raw, err
				}
			}
			if t.Kind() != reflect.Pointer {
				break
			}
		}
	}
	if f.Default != nil {
		return f.Default.FormatCell(ctx, view, row, col)
	}
	return "", false, errors.ErrUnsupported
}

// WithTypeFormatter returns a copy of f with fmt used for values of typ.
func (f *ReflectTypeCellFormatter) WithTypeFormatter(typ reflect.Type, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]CellFormatter)
	}
	mod.Types[typ] = fmt
	return mod
}

// WithKindFormatter returns a copy of f with fmt used for values of kind.
func (f *ReflectTypeCellFormatter) WithKindFormatter(kind reflect.Kind, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]CellFormatter)
	}
	mod.Kinds[kind] = fmt
	return mod
}

// WithDefaultFormatter returns a copy of f with fmt
// used for values without a type or kind formatter.
func (f *ReflectTypeCellFormatter) WithDefaultFormatter(fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	mod.Default = fmt
	return mod
}

func (f *ReflectTypeCellFormatter) cloneOrNew() *ReflectTypeCellFormatter {
	if f == nil {
		return new(ReflectTypeCellFormatter)
	}
	c := &ReflectTypeCellFormatter{Default: f.Default}
	if len(f.Types) > 0 {
		c.Types = make(map[reflect.Type]CellFormatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	if len(f.Kinds) > 0 {
		c.Kinds = make(map[reflect.Kind]CellFormatter, len(f.Kinds))
		for key, val := range f.Kinds {
			c.Kinds[key] = val
		}
	}
	return c
}

// FormatViewAsStrings formats all cells of view as strings
// using formatter with fallback to SprintCellFormatter.
// If addHeaderRow is true, the column titles are the first row.
func FormatViewAsStrings(ctx context.Context, view View, formatter CellFormatter, addHeaderRow bool) (rows [][]string, err error) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, slices.Clone(view.Columns()))
	}
	for row := range view.NumRows() {
		rowStrings := make([]string, numCols)
		for col := range numCols {
			rowStrings[col], _, err = FormatCellOrSprint(ctx, formatter, view, row, col)
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, rowStrings)
	}
	return rows, nil
}
