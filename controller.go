package tablestate

import (
	"go.uber.org/zap"
)

// IDFunc returns the identifier of a row.
type IDFunc[R any, K comparable] func(row R) K

// Controller owns the search, sort, page and selection state
// of a table over a dataset supplied by the caller
// and derives the visible rows in the order filter, sort, paginate.
//
// Every stage is cached by its own inputs:
// changing the sort never filters again
// and changing the page never sorts again.
//
// A Controller is meant to be used by a single owner
// and is not safe for concurrent use.
type Controller[R any, K comparable] struct {
	config Config
	id     IDFunc[R, K]
	logger *zap.Logger

	listeners []func()

	dataset    []R
	datasetGen uint64

	searchTerm string
	sort       SortConfig
	page       int
	selection  Selection[K]

	filtered    []R
	filteredFor filterInputs
	filteredGen uint64 // 0 means not computed

	sorted    []R
	sortedFor sortInputs
	sortedGen uint64 // 0 means not computed
}

type filterInputs struct {
	datasetGen uint64
	searchTerm string
}

type sortInputs struct {
	filteredGen uint64
	sort        SortConfig
}

// NewController returns a Controller with an empty dataset
// on page 1 without search term, sort, or selection.
// The config is normalized, see Config.Normalized.
// NewController panics if id is nil.
func NewController[R any, K comparable](id IDFunc[R, K], config Config) *Controller[R, K] {
	if id == nil {
		panic("tablestate.NewController: nil IDFunc")
	}
	return &Controller[R, K]{
		config: config.Normalized(),
		id:     id,
		logger: zap.NewNop(),
		page:   1,
	}
}

// WithLogger sets a logger for debug messages about state transitions
// and returns the Controller. A nil logger disables logging.
func (c *Controller[R, K]) WithLogger(logger *zap.Logger) *Controller[R, K] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return c
}

// OnChange registers a function that is called once
// after every operation that changed the state.
func (c *Controller[R, K]) OnChange(listener func()) {
	if listener != nil {
		c.listeners = append(c.listeners, listener)
	}
}

func (c *Controller[R, K]) changed(msg string, fields ...zap.Field) {
	c.logger.Debug(msg, fields...)
	for _, listener := range c.listeners {
		listener()
	}
}

// Config returns the normalized configuration.
func (c *Controller[R, K]) Config() Config {
	return c.config
}

// SetDataset replaces the dataset.
// The rows are never modified by the Controller.
// Search term, sort, page and selection are kept,
// the derived current page gets clamped to the new number of pages.
func (c *Controller[R, K]) SetDataset(rows []R) {
	c.dataset = rows
	c.datasetGen++
	c.changed("table dataset replaced", zap.Int("rows", len(rows)))
}

// Dataset returns the rows passed to SetDataset.
func (c *Controller[R, K]) Dataset() []R {
	return c.dataset
}

// Search sets the term that rows are filtered by
// and resets the current page to 1.
func (c *Controller[R, K]) Search(term string) {
	if term == c.searchTerm && c.page == 1 {
		return
	}
	c.searchTerm = term
	c.page = 1
	c.changed("table search", zap.String("term", term))
}

// Sort sorts the rows by the dotted path key.
// Sorting by the currently ascending sorted key flips to descending,
// every other key, or the same key coming from descending,
// is sorted ascending.
// Sort does nothing if the Controller is not sortable
// or the key is empty.
func (c *Controller[R, K]) Sort(key string) {
	if c.config.NotSortable || key == "" {
		return
	}
	c.sort = c.sort.Toggle(key)
	c.changed("table sort",
		zap.String("key", c.sort.Key),
		zap.Stringer("direction", c.sort.Direction),
	)
}

// SetPage sets the current page clamped to [1, TotalPages].
func (c *Controller[R, K]) SetPage(page int) {
	page = c.Pagination().Clamp(page)
	if page == c.page {
		return
	}
	c.page = page
	c.changed("table page", zap.Int("page", page))
}

// NextPage moves to the next page if there is one.
func (c *Controller[R, K]) NextPage() {
	c.SetPage(c.Pagination().CurrentPage + 1)
}

// PrevPage moves to the previous page if there is one.
func (c *Controller[R, K]) PrevPage() {
	c.SetPage(c.Pagination().CurrentPage - 1)
}

// ToggleSelect selects id if it is not selected or deselects it otherwise,
// independent of the page the row is on.
func (c *Controller[R, K]) ToggleSelect(id K) {
	selected := c.selection.Toggle(id)
	c.changed("table toggle select",
		zap.Any("id", id),
		zap.Bool("selected", selected),
	)
}

// ToggleSelectAll clears the whole selection if all rows
// of the visible page are already selected,
// else it replaces the selection with exactly the rows of the visible page.
func (c *Controller[R, K]) ToggleSelectAll() {
	visibleIDs := c.visibleIDs()
	if len(visibleIDs) > 0 && c.selection.ContainsAll(visibleIDs) {
		c.selection.Clear()
		c.changed("table deselect all")
		return
	}
	c.selection.Replace(visibleIDs)
	c.changed("table select page", zap.Int("selected", len(visibleIDs)))
}

// ClearSelection deselects all rows.
func (c *Controller[R, K]) ClearSelection() {
	if c.selection.Len() == 0 {
		return
	}
	c.selection.Clear()
	c.changed("table clear selection")
}

// Reset restores page 1, an empty search term,
// no sort and an empty selection as a single state change.
func (c *Controller[R, K]) Reset() {
	c.page = 1
	c.searchTerm = ""
	c.sort = SortConfig{}
	c.selection.Clear()
	c.changed("table reset")
}

// SearchTerm returns the current search term.
func (c *Controller[R, K]) SearchTerm() string {
	return c.searchTerm
}

// SortConfig returns the current sort configuration.
func (c *Controller[R, K]) SortConfig() SortConfig {
	return c.sort
}

// FilteredRows returns the rows of the dataset matching the search term.
// The returned slice must not be modified.
func (c *Controller[R, K]) FilteredRows() []R {
	inputs := filterInputs{datasetGen: c.datasetGen, searchTerm: c.searchTerm}
	if c.filteredGen == 0 || c.filteredFor != inputs {
		c.filtered = FilterRows(c.dataset, c.searchTerm, c.config.SearchFields)
		c.filteredFor = inputs
		c.filteredGen++
	}
	return c.filtered
}

// SortedRows returns the filtered rows in sort order.
// The returned slice must not be modified.
func (c *Controller[R, K]) SortedRows() []R {
	filtered := c.FilteredRows()
	inputs := sortInputs{filteredGen: c.filteredGen, sort: c.sort}
	if c.sortedGen == 0 || c.sortedFor != inputs {
		c.sorted = SortRows(filtered, c.sort)
		c.sortedFor = inputs
		c.sortedGen++
	}
	return c.sorted
}

// Pagination returns the pagination of the sorted rows.
// CurrentPage is clamped to the available pages.
func (c *Controller[R, K]) Pagination() Pagination {
	return NewPagination(len(c.SortedRows()), c.page, c.config.PageSize)
}

// VisibleRows returns the sorted rows of the current page.
// The returned slice must not be modified.
func (c *Controller[R, K]) VisibleRows() []R {
	return PageRows(c.SortedRows(), c.Pagination())
}

func (c *Controller[R, K]) visibleIDs() []K {
	visible := c.VisibleRows()
	ids := make([]K, len(visible))
	for i, row := range visible {
		ids[i] = c.id(row)
	}
	return ids
}

// IsSelected returns true if the row with id is selected.
func (c *Controller[R, K]) IsSelected(id K) bool {
	return c.selection.Has(id)
}

// IsRowSelected returns true if row is selected.
func (c *Controller[R, K]) IsRowSelected(row R) bool {
	return c.selection.Has(c.id(row))
}

// HasSelection returns true if any row is selected.
func (c *Controller[R, K]) HasSelection() bool {
	return c.selection.Len() > 0
}

// SelectedCount returns the number of selected rows.
func (c *Controller[R, K]) SelectedCount() int {
	return c.selection.Len()
}

// SelectedIDs returns the selected IDs in the order they were selected.
func (c *Controller[R, K]) SelectedIDs() []K {
	return c.selection.IDs()
}

// SelectedRows returns the rows of the dataset that are selected
// in dataset order. Selected IDs without a row in the dataset are skipped.
func (c *Controller[R, K]) SelectedRows() []R {
	if c.selection.Len() == 0 {
		return nil
	}
	var rows []R
	for _, row := range c.dataset {
		if c.selection.Has(c.id(row)) {
			rows = append(rows, row)
		}
	}
	return rows
}

// View returns the visible rows as View with the passed columns
// and a title describing the pagination like "11-20 of 37".
func (c *Controller[R, K]) View(columns ...Column) *RowsView[R] {
	return NewRowsView(c.Pagination().String(), c.VisibleRows(), columns...)
}
