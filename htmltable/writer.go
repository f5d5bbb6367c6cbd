// Package htmltable writes tablestate views as HTML tables.
//
// Cell values are HTML escaped unless a formatter returns them as raw.
// Data rows can get a CSS class, for example to mark the
// selected rows of a tablestate.Controller:
//
//	view := ctrl.View()
//	err := htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithRowClass(func(row int) string {
//	        if ctrl.IsRowSelected(view.Row(row)) {
//	            return "selected"
//	        }
//	        return ""
//	    }).
//	    WriteView(ctx, w, view)
package htmltable

import (
	"context"
	"html/template"
	"io"
	"reflect"

	"github.com/domonda/go-tablestate"
)

// Writer writes a tablestate.View as HTML table.
//
// Writer is immutable after creation, all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass       string
	columnFormatters map[int]tablestate.CellFormatter
	typeFormatters   *tablestate.ReflectTypeCellFormatter
	rowClass         func(row int) string
	nilValue         template.HTML
	headerRow        bool
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter returns a Writer with the default templates
// and no header row.
func NewWriter() *Writer {
	return &Writer{
		columnFormatters: make(map[int]tablestate.CellFormatter),
		typeFormatters:   nil, // OK to use nil *tablestate.ReflectTypeCellFormatter
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// WriteView writes view as HTML table to dest
// using the title of the view as caption.
//
// Cells are formatted by the column formatter of their column
// or else by the type formatters, with fmt.Sprint as fallback.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view tablestate.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			RawCells: make([]template.HTML, numCols),
		}
		reflectView = tablestate.AsReflectCellView(view)
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		templData.RowClass = ""
		if w.rowClass != nil {
			templData.RowClass = w.rowClass(row)
		}
		for col := range numCols {
			if tablestate.ValueIsNil(reflectView.ReflectCell(row, col)) {
				templData.RawCells[col] = w.nilValue
				continue
			}
			var formatter tablestate.CellFormatter = w.typeFormatters
			if colFormatter, ok := w.columnFormatters[col]; ok {
				formatter = colFormatter
			}
			str, isRaw, err := tablestate.FormatCellOrSprint(ctx, formatter, view, row, col)
			if err != nil {
				return err
			}
			if !isRaw {
				str = template.HTMLEscapeString(str)
			}
			templData.RawCells[col] = template.HTML(str) //#nosec G203
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer that writes
// the column titles as th elements if headerRow is true.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the CSS class for the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithRowClass returns a new writer that calls rowClass
// with the index of every data row to get its CSS class.
func (w *Writer) WithRowClass(rowClass func(row int) string) *Writer {
	mod := w.clone()
	mod.rowClass = rowClass
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the column.
// Column formatters take precedence over type formatters.
// If nil is passed as formatter, a previously registered formatter for the column is removed.
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

// WithTypeFormatter returns a new writer using fmt for cells of type typ.
func (w *Writer) WithTypeFormatter(typ reflect.Type, fmt tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithTypeFormatter(typ, fmt)
	return mod
}

// WithKindFormatter returns a new writer using fmt for cells of kind.
func (w *Writer) WithKindFormatter(kind reflect.Kind, fmt tablestate.CellFormatter) *Writer {
	mod := w.clone()
	mod.typeFormatters = w.typeFormatters.WithKindFormatter(kind, fmt)
	return mod
}

// WithNilValue returns a new writer that writes nilValue for nil cells.
func (w *Writer) WithNilValue(nilValue template.HTML) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithTemplates returns a new writer with custom templates.
// nil templates keep the current ones.
func (w *Writer) WithTemplates(header, row, footer *template.Template) *Writer {
	mod := w.clone()
	if header != nil {
		mod.headerTemplate = header
	}
	if row != nil {
		mod.rowTemplate = row
	}
	if footer != nil {
		mod.footerTemplate = footer
	}
	return mod
}
