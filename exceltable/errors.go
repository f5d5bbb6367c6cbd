package exceltable

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned for sheets without
// any non empty cell.
// ReadAllSheets skips empty sheets.
var ErrEmptySheet = errors.New("empty sheet")

// ErrSheetNotExist is re-exported from excelize
// and holds the name of the missing sheet:
//
//	var sheetErr exceltable.ErrSheetNotExist
//	if errors.As(err, &sheetErr) {
//	    fmt.Println("no sheet", sheetErr.SheetName)
//	}
type ErrSheetNotExist = excelize.ErrSheetNotExist
