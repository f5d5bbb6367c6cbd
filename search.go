package tablestate

import (
	"strings"
)

// MatchesSearch returns true if the lower-cased term is a substring
// of the lower-cased string representation of any of the values
// resolved from row by the dotted paths in fields.
//
// An empty term or empty fields match every row.
// A field whose path can't be resolved doesn't match.
func MatchesSearch(row any, term string, fields []string) bool {
	if term == "" || len(fields) == 0 {
		return true
	}
	return matchesLowerTerm(row, strings.ToLower(term), fields)
}

func matchesLowerTerm(row any, lowerTerm string, fields []string) bool {
	for _, field := range fields {
		val, ok := ResolvePath(row, field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(sprintValue(val)), lowerTerm) {
			return true
		}
	}
	return false
}

// FilterRows returns the rows matching term in any of the fields,
// see MatchesSearch. The passed rows are returned unchanged
// if the term or the fields are empty, otherwise a new slice is returned.
func FilterRows[R any](rows []R, term string, fields []string) []R {
	if term == "" || len(fields) == 0 {
		return rows
	}
	lowerTerm := strings.ToLower(term)
	filtered := make([]R, 0, len(rows))
	for _, row := range rows {
		if matchesLowerTerm(row, lowerTerm, fields) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
