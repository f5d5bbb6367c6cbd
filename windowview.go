package tablestate

var _ View = new(WindowView)

// WindowView shows a window of the rows of a Source view,
// for example one page described by a Pagination.
type WindowView struct {
	Source View
	// Offset index of the first row from Source,
	// negative values are treated as zero.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
}

// PageView returns a WindowView of source
// showing the rows of the page p.
func PageView(source View, p Pagination) *WindowView {
	return &WindowView{
		Source:    source,
		RowOffset: p.StartIndex,
		RowLimit:  max(p.NumVisible(), 0),
	}
}

func (view *WindowView) Title() string     { return view.Source.Title() }
func (view *WindowView) Columns() []string { return view.Source.Columns() }

func (view *WindowView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

func (view *WindowView) Cell(row, col int) any {
	if row < 0 || row >= view.NumRows() {
		return nil
	}
	return view.Source.Cell(row+max(view.RowOffset, 0), col)
}
