package tablestate

import (
	"reflect"
)

// ExtraColsView returns a View with the columns of left
// followed by extra columns whose cells are returned by value
// with col counting from zero for the first extra column.
func ExtraColsView(left View, columns []string, value func(row, col int) any) ReflectCellView {
	return &extraColsView{
		left:    AsReflectCellView(left),
		columns: columns,
		value:   value,
	}
}

type extraColsView struct {
	left    ReflectCellView
	columns []string
	value   func(row, col int) any
}

func (e *extraColsView) Title() string { return e.left.Title() }

func (e *extraColsView) Columns() []string {
	leftCols := e.left.Columns()
	return append(leftCols[:len(leftCols):len(leftCols)], e.columns...)
}

func (e *extraColsView) NumRows() int { return e.left.NumRows() }

func (e *extraColsView) Cell(row, col int) any {
	numLeftCols := len(e.left.Columns())
	switch {
	case row < 0 || row >= e.NumRows() || col < 0:
		return nil
	case col < numLeftCols:
		return e.left.Cell(row, col)
	case col < numLeftCols+len(e.columns):
		return e.value(row, col-numLeftCols)
	}
	return nil
}

func (e *extraColsView) ReflectCell(row, col int) reflect.Value {
	if col < len(e.left.Columns()) {
		return e.left.ReflectCell(row, col)
	}
	return reflect.ValueOf(e.Cell(row, col))
}
