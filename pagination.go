package tablestate

import "fmt"

// Pagination describes the visible page of a table.
// It is always derived from the number of rows,
// the requested page and the page size, never stored.
type Pagination struct {
	// CurrentPage is the 1-based number of the visible page.
	CurrentPage int `json:"currentPage"`
	// TotalPages is at least 1, also for zero rows.
	TotalPages int `json:"totalPages"`
	// TotalItems is the number of filtered and sorted rows.
	TotalItems int `json:"totalItems"`
	PageSize   int `json:"pageSize"`
	// StartIndex is the index of the first visible row.
	StartIndex int `json:"startIndex"`
	// EndIndex is the exclusive index after the last visible row.
	EndIndex int `json:"endIndex"`
}

// NewPagination returns the Pagination for totalItems rows
// with the passed page clamped to [1, TotalPages].
// A non positive pageSize is replaced by DefaultPageSize.
func NewPagination(totalItems, page, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalItems = max(totalItems, 0)
	p := Pagination{
		TotalItems: totalItems,
		PageSize:   pageSize,
		TotalPages: max((totalItems+pageSize-1)/pageSize, 1),
	}
	p.CurrentPage = p.Clamp(page)
	p.StartIndex = (p.CurrentPage - 1) * pageSize
	p.EndIndex = min(p.StartIndex+pageSize, totalItems)
	return p
}

// Clamp returns page limited to the range [1, TotalPages].
func (p Pagination) Clamp(page int) int {
	return min(max(page, 1), max(p.TotalPages, 1))
}

// NumVisible returns the number of rows on the current page.
func (p Pagination) NumVisible() int {
	return p.EndIndex - p.StartIndex
}

// HasPrev returns true if there is a page before the current one.
func (p Pagination) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext returns true if there is a page after the current one.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// String returns a summary like "11-20 of 37".
func (p Pagination) String() string {
	if p.TotalItems == 0 {
		return "0 of 0"
	}
	return fmt.Sprintf("%d-%d of %d", p.StartIndex+1, p.EndIndex, p.TotalItems)
}

// PageRows returns the rows of the page described by p.
func PageRows[R any](rows []R, p Pagination) []R {
	start := min(max(p.StartIndex, 0), len(rows))
	end := min(max(p.EndIndex, start), len(rows))
	return rows[start:end:end]
}
