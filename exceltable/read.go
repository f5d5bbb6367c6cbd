// Package exceltable reads the sheets of Excel files (.xlsx, .xlsm, .xltm, .xltx)
// as tablestate.StringsView and writes views as Excel sheets
// using github.com/xuri/excelize/v2.
//
// The first row of a sheet is used as column titles.
// Empty rows and trailing empty columns are removed.
//
//	file, _ := os.Open("clientes.xlsx")
//	defer file.Close()
//	view, err := exceltable.ReadFirstSheet(file)
//	if err != nil {
//	    return err
//	}
//	ctrl.SetDataset(tablestate.RecordsFromView(view))
package exceltable

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-tablestate"
)

// ReadFirstSheet reads the first sheet of the Excel file from reader
// with the sheet name as view title.
//
// Cells are returned formatted with the number format
// of the cell like Excel displays them.
// ErrEmptySheet is returned if the sheet has no non empty cells.
func ReadFirstSheet(reader io.Reader) (sheetView *tablestate.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, false)
}

// ReadSheet reads the sheet with name from the Excel file in reader.
//
// ErrSheetNotExist is returned if there is no such sheet
// and ErrEmptySheet if the sheet has no non empty cells.
func ReadSheet(reader io.Reader, name string, rawCellStrings bool) (sheetView *tablestate.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return readSheet(f, name, rawCellStrings)
}

// ReadAllSheets reads all non empty sheets of the Excel file in reader.
func ReadAllSheets(reader io.Reader, rawCellStrings bool) (sheetViews []*tablestate.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	for _, sheet := range f.GetSheetList() {
		view, err := readSheet(f, sheet, rawCellStrings)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		sheetViews = append(sheetViews, view)
	}
	return sheetViews, nil
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (*tablestate.StringsView, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, ErrSheetNotExist{SheetName: sheet}
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	rows = tablestate.RemoveEmptyStringRows(rows)
	numCols := tablestate.RemoveEmptyStringColumns(rows)
	if len(rows) == 0 || numCols == 0 {
		return nil, ErrEmptySheet
	}
	columns := rows[0]
	if len(columns) < numCols {
		columns = append(columns, make([]string, numCols-len(columns))...)
	}
	return tablestate.NewStringsView(sheet, rows[1:], columns...), nil
}
