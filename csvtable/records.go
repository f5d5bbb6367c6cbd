package csvtable

import (
	"strings"

	"github.com/domonda/go-tablestate"
)

// RecordsFromRows uses the first of the rows as header
// and returns a tablestate.Record for every following non empty row
// with the trimmed header titles as keys.
// Missing trailing fields are set to empty strings.
func RecordsFromRows(rows [][]string) ([]tablestate.Record, error) {
	rows = RemoveEmptyRows(rows)
	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}
	return tablestate.RecordsFromView(tablestate.NewStringsView("", rows)), nil
}

// ReadRecords parses csv with detected format
// and returns its rows as records, see RecordsFromRows.
func ReadRecords(csv []byte) ([]tablestate.Record, *Format, error) {
	rows, format, err := ParseDetectFormat(csv, nil)
	if err != nil {
		return nil, format, err
	}
	records, err := RecordsFromRows(rows)
	return records, format, err
}

// EscapeQuotes doubles all quote characters.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
