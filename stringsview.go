package tablestate

import (
	"strings"
)

// StringsView is a View implementation that uses strings as cell values.
//
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for the missing cells.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView returns a StringsView with the passed columns,
// or if no cols are passed, uses the first of the rows as column titles.
// Leading and trailing whitespace is trimmed from the column titles.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	trimmed := make([]string, len(cols))
	for i, col := range cols {
		trimmed[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: trimmed, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

// HeaderView is a View with a single row
// containing the column titles.
type HeaderView struct {
	Tit  string
	Cols []string
}

// NewHeaderViewFrom returns a HeaderView
// with the title and columns of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

func (view *HeaderView) Cell(row, col int) any {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return nil
	}
	return view.Cols[col]
}
