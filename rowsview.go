package tablestate

import (
	"reflect"
)

// Column of a RowsView.
type Column struct {
	// Title of the column.
	Title string
	// Path is the dotted path of the row field shown in the column.
	Path string
}

// Col returns a Column with the passed title and dotted path.
// If path is empty, title is used as path.
func Col(title, path string) Column {
	if path == "" {
		path = title
	}
	return Column{Title: title, Path: path}
}

// ColumnsFromPaths returns a Column for every dotted path
// with the path as title.
func ColumnsFromPaths(paths ...string) []Column {
	columns := make([]Column, len(paths))
	for i, path := range paths {
		columns[i] = Column{Title: path, Path: path}
	}
	return columns
}

// StructColumns returns a Column for every exported and not ignored
// field of the struct type of rowType using DefaultStructFieldNaming
// for the titles and the field names as paths.
// Embedded struct fields are inlined.
func StructColumns(rowType reflect.Type) []Column {
	rowType = derefType(rowType)
	if rowType.Kind() != reflect.Struct {
		return nil
	}
	var columns []Column
	for _, field := range StructFieldTypes(rowType) {
		if DefaultStructFieldNaming.IsIgnored(field) {
			continue
		}
		columns = append(columns, Column{
			Title: DefaultStructFieldNaming.StructFieldColumn(field),
			Path:  field.Name,
		})
	}
	return columns
}

var _ ReflectCellView = new(RowsView[any])

// RowsView is a View of rows of any type
// with cells resolved by the dotted paths of its columns.
type RowsView[R any] struct {
	title   string
	columns []Column
	rows    []R
}

// NewRowsView returns a RowsView of rows.
// If no columns are passed then StructColumns
// of the row type are used.
func NewRowsView[R any](title string, rows []R, columns ...Column) *RowsView[R] {
	if len(columns) == 0 {
		columns = StructColumns(reflect.TypeFor[R]())
	}
	return &RowsView[R]{title: title, columns: columns, rows: rows}
}

func (view *RowsView[R]) Title() string { return view.title }

func (view *RowsView[R]) Columns() []string {
	titles := make([]string, len(view.columns))
	for i, col := range view.columns {
		titles[i] = col.Title
	}
	return titles
}

func (view *RowsView[R]) NumRows() int { return len(view.rows) }

// Row returns the row with the index row.
func (view *RowsView[R]) Row(row int) R {
	return view.rows[row]
}

func (view *RowsView[R]) Cell(row, col int) any {
	val := view.ReflectCell(row, col)
	if !val.IsValid() || !val.CanInterface() {
		return nil
	}
	return val.Interface()
}

func (view *RowsView[R]) ReflectCell(row, col int) reflect.Value {
	if row < 0 || col < 0 || row >= len(view.rows) || col >= len(view.columns) {
		return reflect.Value{}
	}
	val, _ := ResolvePath(view.rows[row], view.columns[col].Path)
	return val
}
