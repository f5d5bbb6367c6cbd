package tablestate

import "fmt"

// Record is a table row read from a file or database
// with the column titles as keys.
// Nested values can be addressed by dotted paths
// when they are of type Record or map[string]any.
type Record map[string]any

// RecordsFromView returns a Record for every row of view
// keyed by the column titles.
func RecordsFromView(view View) []Record {
	cols := view.Columns()
	records := make([]Record, view.NumRows())
	for row := range records {
		rec := make(Record, len(cols))
		for col, title := range cols {
			rec[title] = view.Cell(row, col)
		}
		records[row] = rec
	}
	return records
}

// RecordID returns an IDFunc that returns the value
// of the column as string formatted with fmt.Sprint.
//
// Records without a value for the column all get the empty string as ID,
// so a Controller selects or deselects them together.
// Make sure the column exists and has unique values.
func RecordID(column string) IDFunc[Record, string] {
	return func(rec Record) string {
		val, ok := rec[column]
		if !ok || val == nil {
			return ""
		}
		return fmt.Sprint(val)
	}
}
