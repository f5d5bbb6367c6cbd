package tablestate

// IsEmptyStringRow returns true if all fields of row are empty strings.
func IsEmptyStringRow(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}

// RemoveEmptyStringRows removes all rows without a non empty field.
// The passed rows slice is reused for the result.
func RemoveEmptyStringRows(rows [][]string) [][]string {
	result := rows[:0]
	for _, row := range rows {
		if !IsEmptyStringRow(row) {
			result = append(result, row)
		}
	}
	return result
}

// RemoveEmptyStringColumns cuts off the columns at the right
// that are empty in all rows and returns the number
// of remaining columns, which is the length of the longest row.
func RemoveEmptyStringColumns(rows [][]string) (numCols int) {
	for _, row := range rows {
		for col := len(row) - 1; col >= numCols; col-- {
			if row[col] != "" {
				numCols = col + 1
				break
			}
		}
	}
	for i, row := range rows {
		if len(row) > numCols {
			rows[i] = row[:numCols]
		}
	}
	return numCols
}

// StringColumnWidths returns the widths of the columns
// as count of runes. If numCols is negative
// then the length of the longest row is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			numCols = max(numCols, len(row))
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row); col++ {
			colWidths[col] = max(colWidths[col], len([]rune(row[col])))
		}
	}
	return colWidths
}
