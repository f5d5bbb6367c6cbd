package exceltable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-tablestate"
)

// WriteView writes view as single sheet Excel file to dest.
// The sheet is named after the view title
// or "Sheet1" if the title is empty.
// The first row holds the column titles.
//
// Numbers, bools and time.Time are written as typed cells,
// nil cells are left empty and all other values
// are written as strings formatted with fmt.Sprint.
func WriteView(ctx context.Context, dest io.Writer, view tablestate.View) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	sheet := f.GetSheetName(0)
	if title := sheetName(view.Title()); title != sheet {
		if err = f.SetSheetName(sheet, title); err != nil {
			return err
		}
		sheet = title
	}

	columns := view.Columns()
	header := make([]any, len(columns))
	for col, title := range columns {
		header[col] = title
	}
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	reflectView := tablestate.AsReflectCellView(view)
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		values := make([]any, len(columns))
		for col := range columns {
			if tablestate.ValueIsNil(reflectView.ReflectCell(row, col)) {
				continue
			}
			values[col] = cellValue(view.Cell(row, col))
		}
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(dest)
}

func cellValue(val any) any {
	switch val.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, time.Duration:
		return val
	}
	return fmt.Sprint(val)
}

// sheetName returns title as valid sheet name
// with at most 31 characters.
func sheetName(title string) string {
	if title == "" {
		return "Sheet1"
	}
	runes := []rune(title)
	for i, r := range runes {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			runes[i] = '_'
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
