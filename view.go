package tablestate

import "reflect"

// View is a read only table with a title, column titles, and cells.
type View interface {
	// Title of the View
	Title() string
	// Columns returns the column titles
	// which also defines the number of columns.
	Columns() []string
	// NumRows returns the number of rows.
	NumRows() int
	// Cell returns the value at row and col
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

// ReflectCellView is a View that can return
// cell values as reflect.Value.
type ReflectCellView interface {
	View

	// ReflectCell returns the reflect.Value of the cell at row and col
	// or an invalid reflect.Value if the indices are out of bounds.
	ReflectCell(row, col int) reflect.Value
}

// AsReflectCellView returns view as ReflectCellView,
// either directly if it implements the interface
// or wrapped by calling reflect.ValueOf on its cells.
func AsReflectCellView(view View) ReflectCellView {
	if v, ok := view.(ReflectCellView); ok {
		return v
	}
	return reflectCellView{view}
}

type reflectCellView struct {
	View
}

func (v reflectCellView) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(v.Cell(row, col))
}

// ViewWithTitle returns a View that wraps source with another title.
func ViewWithTitle(source View, title string) ReflectCellView {
	return viewWithTitle{ReflectCellView: AsReflectCellView(source), title: title}
}

type viewWithTitle struct {
	ReflectCellView
	title string
}

func (v viewWithTitle) Title() string { return v.title }
