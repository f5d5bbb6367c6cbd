package csvtable

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-tablestate"
)

// Padding aligns the fields of a column
// to the same display width.
type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes a tablestate.View as CSV.
//
// Writer is immutable, all With* methods return a modified copy.
type Writer struct {
	columnFormatters map[int]tablestate.CellFormatter
	formatters       *tablestate.ReflectTypeCellFormatter
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoding         charset.Encoding
}

// NewWriter returns a Writer using ';' as delimiter
// and "\r\n" as line ending without header row.
func NewWriter() *Writer {
	return &Writer{
		columnFormatters: make(map[int]tablestate.CellFormatter),
		formatters:       nil, // OK to use nil *tablestate.ReflectTypeCellFormatter
		padding:          NoPadding,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view tablestate.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}
	var colWidths []int
	if w.padding != NoPadding {
		colWidths = ColumnWidths(rows, len(view.Columns()))
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, rowStrs := range rows {
		for col, str := range rowStrs {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			if colWidths == nil {
				rowBuf.WriteString(str)
				continue
			}
			padTotal := colWidths[col] - runewidth.StringWidth(str)
			var padLeft, padRight int
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		rowBuf.WriteString(w.newLine)

		rowBytes := rowBuf.Bytes()
		if w.encoding != nil {
			rowBytes, err = w.encoding.Encode(rowBytes)
			if err != nil {
				return err
			}
		}
		_, err = dest.Write(rowBytes)
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// ViewStrings returns the escaped strings of all cells of view
// with the column titles as first row if the header row is enabled.
func (w *Writer) ViewStrings(ctx context.Context, view tablestate.View) ([][]string, error) {
	numRows := view.NumRows()
	rows := make([][]string, 0, numRows+1)
	if w.headerRow {
		header := tablestate.NewHeaderViewFrom(view)
		rowStrs, err := w.rowStrings(ctx, header, 0, false)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	for row := range numRows {
		rowStrs, err := w.rowStrings(ctx, view, row, true)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

func (w *Writer) rowStrings(ctx context.Context, view tablestate.View, row int, useFormatters bool) ([]string, error) {
	columns := view.Columns()
	rowStrs := make([]string, len(columns))
	for col := range columns {
		var err error
		rowStrs[col], err = w.cellString(ctx, view, row, col, useFormatters)
		if err != nil {
			return nil, err
		}
	}
	return rowStrs, nil
}

func (w *Writer) cellString(ctx context.Context, view tablestate.View, row, col int, useFormatters bool) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if !useFormatters {
		return w.escapeString(view.Columns()[col], false), nil
	}
	if tablestate.ValueIsNil(tablestate.AsReflectCellView(view).ReflectCell(row, col)) {
		return w.escapeString(w.nilValue, false), nil
	}
	var formatter tablestate.CellFormatter = w.formatters
	if colFormatter, ok := w.columnFormatters[col]; ok {
		formatter = firstFormatter{colFormatter, w.formatters}
	}
	str, isRaw, err := tablestate.FormatCellOrSprint(ctx, formatter, view, row, col)
	if err != nil {
		return "", err
	}
	return w.escapeString(str, isRaw), nil
}

func (w *Writer) escapeString(str string, isRaw bool) string {
	if isRaw {
		return str
	}
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

// ColumnWidths returns the display width of the widest
// field of every column measured with runewidth.StringWidth.
func ColumnWidths(rows [][]string, numCols int) []int {
	colWidths := make([]int, numCols)
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row); col++ {
			colWidths[col] = max(colWidths[col], runewidth.StringWidth(row[col]))
		}
	}
	return colWidths
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithColumnFormatter returns a Writer that formats the column
// with columnIndex using formatter before the type formatters.
// A nil formatter removes the column formatter.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[int]tablestate.CellFormatter, len(w.columnFormatters)+1)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

func (w *Writer) WithTypeFormatter(typ reflect.Type, fmt tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatters = w.formatters.WithTypeFormatter(typ, fmt)
	return mod
}

func (w *Writer) WithKindFormatter(kind reflect.Kind, fmt tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatters = w.formatters.WithKindFormatter(kind, fmt)
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithEncoding returns a Writer that encodes the UTF-8 output
// with the named charset, see github.com/domonda/go-types/charset.
func (w *Writer) WithEncoding(name string) (*Writer, error) {
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	mod := w.clone()
	mod.encoding = enc
	return mod, nil
}

func (w *Writer) Delimiter() rune { return w.delimiter }
func (w *Writer) NewLine() string { return w.newLine }

// firstFormatter tries the first formatter
// and falls back to the second for unsupported cells.
type firstFormatter [2]tablestate.CellFormatter

func (f firstFormatter) FormatCell(ctx context.Context, view tablestate.View, row, col int) (string, bool, error) {
	str, raw, err := f[0].FormatCell(ctx, view, row, col)
	if err == nil || f[1] == nil || !isUnsupported(err) {
		return str, raw, err
	}
	return f[1].FormatCell(ctx, view, row, col)
}

func isUnsupported(err error) bool {
	return errors.Is(err, errors.ErrUnsupported)
}
