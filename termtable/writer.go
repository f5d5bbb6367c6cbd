// Package termtable renders tablestate views as text tables
// for terminals styled with github.com/charmbracelet/lipgloss.
//
// Colors are only rendered when the output is a terminal
// supporting them, the column layout is the same in every case.
package termtable

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/domonda/go-tablestate"
)

// Color palette
var (
	ColorBase    = lipgloss.Color("#1D221E")
	ColorSurface = lipgloss.Color("#2A332C")
	ColorMuted   = lipgloss.Color("#7E8C80")
	ColorText    = lipgloss.Color("#D6E0D3")
	ColorAccent  = lipgloss.Color("#8FA082")
)

// Default styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			Background(ColorSurface)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent).
				Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)
)

// Writer renders a tablestate.View as text table.
//
// Writer is immutable, all With* methods return a modified copy.
type Writer struct {
	formatter     tablestate.CellFormatter
	titleStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	rowStyle      lipgloss.Style
	selectedStyle lipgloss.Style
	footerStyle   lipgloss.Style
	selected      func(row int) bool
	footer        string
	maxCellWidth  int
}

// NewWriter returns a Writer with the default styles
// that cuts cells longer than 40 characters.
func NewWriter() *Writer {
	return &Writer{
		titleStyle:    TitleStyle,
		headerStyle:   HeaderStyle,
		rowStyle:      RowStyle,
		selectedStyle: SelectedRowStyle,
		footerStyle:   FooterStyle,
		maxCellWidth:  40,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// Render returns the view rendered as table
// with the view title above the column titles.
func (w *Writer) Render(ctx context.Context, view tablestate.View) (string, error) {
	rows, err := tablestate.FormatViewAsStrings(ctx, view, w.formatter, true)
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		for col, str := range row {
			row[col] = w.truncate(strings.ReplaceAll(str, "\n", " "))
		}
	}

	colWidths := make([]int, len(view.Columns()))
	for _, row := range rows {
		for col, str := range row {
			colWidths[col] = max(colWidths[col], lipgloss.Width(str))
		}
	}

	var lines []string
	if title := view.Title(); title != "" {
		lines = append(lines, w.titleStyle.Render(title))
	}
	for i, row := range rows {
		style := w.rowStyle
		switch {
		case i == 0:
			style = w.headerStyle
		case w.selected != nil && w.selected(i-1):
			style = w.selectedStyle
		}
		cells := make([]string, len(row))
		for col, str := range row {
			// Width includes the horizontal padding of the style
			cells[col] = style.Width(colWidths[col] + style.GetHorizontalPadding()).Render(str)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if w.footer != "" {
		lines = append(lines, w.footerStyle.Render(w.footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

// WriteView writes the rendered view followed by a newline to dest.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view tablestate.View) error {
	table, err := w.Render(ctx, view)
	if err != nil {
		return err
	}
	_, err = io.WriteString(dest, table+"\n")
	return err
}

func (w *Writer) truncate(str string) string {
	if w.maxCellWidth <= 0 || lipgloss.Width(str) <= w.maxCellWidth {
		return str
	}
	runes := []rune(str)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w.maxCellWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// WithFormatter returns a Writer formatting cells with formatter
// with fmt.Sprint as fallback for unsupported cells.
func (w *Writer) WithFormatter(formatter tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatter = formatter
	return mod
}

// WithSelected returns a Writer that renders the data rows
// for which selected returns true with the selected row style.
func (w *Writer) WithSelected(selected func(row int) bool) *Writer {
	mod := w.clone()
	mod.selected = selected
	return mod
}

// WithFooter returns a Writer that renders footer below the table,
// for example a pager like "page 2 of 4".
func (w *Writer) WithFooter(footer string) *Writer {
	mod := w.clone()
	mod.footer = footer
	return mod
}

// WithMaxCellWidth returns a Writer that cuts cells wider
// than maxCellWidth. Zero disables cutting.
func (w *Writer) WithMaxCellWidth(maxCellWidth int) *Writer {
	mod := w.clone()
	mod.maxCellWidth = maxCellWidth
	return mod
}

// WithStyles returns a Writer with the passed styles
// for the header row, data rows and selected data rows.
func (w *Writer) WithStyles(header, row, selected lipgloss.Style) *Writer {
	mod := w.clone()
	mod.headerStyle = header
	mod.rowStyle = row
	mod.selectedStyle = selected
	return mod
}

// WithPlainStyles returns a Writer without colors,
// borders or bold text, only keeping the cell padding.
func (w *Writer) WithPlainStyles() *Writer {
	plain := lipgloss.NewStyle().Padding(0, 1)
	mod := w.clone()
	mod.titleStyle = plain
	mod.headerStyle = plain
	mod.rowStyle = plain
	mod.selectedStyle = plain
	mod.footerStyle = plain
	return mod
}
