package tablestate

import (
	"reflect"
	"slices"
)

// SortDirection is the direction of a SortConfig.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// String implements the fmt.Stringer interface.
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortConfig is the sort state of a Controller.
// The Direction is only meaningful if Key is set.
type SortConfig struct {
	// Key is the dotted path of the sorted field,
	// an empty Key means the rows are not sorted.
	Key       string
	Direction SortDirection
}

// IsSet returns true if a sort key is set.
func (c SortConfig) IsSet() bool {
	return c.Key != ""
}

// Toggle returns the SortConfig after clicking on key:
// the currently ascending sorted key flips to descending,
// every other key, or the same key coming from descending,
// is sorted ascending.
func (c SortConfig) Toggle(key string) SortConfig {
	if c.Key == key && c.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// SortRows returns a stably sorted copy of rows
// ordered by the values resolved from config.Key,
// see CompareValues for the ordering.
// The passed rows are returned unchanged if no key is set.
func SortRows[R any](rows []R, config SortConfig) []R {
	if !config.IsSet() {
		return rows
	}
	// Resolve every key once instead of twice per comparison
	keys := make([]reflect.Value, len(rows))
	for i, row := range rows {
		keys[i], _ = ResolvePath(row, config.Key)
	}
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		c := CompareValues(keys[a], keys[b])
		if config.Direction == Descending {
			return -c
		}
		return c
	})
	sorted := make([]R, len(rows))
	for i, index := range order {
		sorted[i] = rows[index]
	}
	return sorted
}
