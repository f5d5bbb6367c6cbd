package sqltable

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/domonda/go-tablestate"
)

var _ driver.Stmt = new(stmt)

// stmt is a parsed SELECT query over a view
// with the column projection and row window applied.
type stmt struct {
	view tablestate.View
}

func newStmt(views map[string]tablestate.View, query string) (*stmt, error) {
	q, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	view := views[q.table]
	if view == nil {
		return nil, fmt.Errorf("view %q not found", q.table)
	}
	if q.offset > 0 || q.limit > 0 {
		view = &tablestate.WindowView{
			Source:    view,
			RowOffset: q.offset,
			RowLimit:  q.limit,
		}
	}
	if len(q.columns) == 1 && q.columns[0] == "*" {
		return &stmt{view: view}, nil
	}
	projected := &columnsView{
		source:  view,
		columns: q.columns,
		mapping: make([]int, len(q.columns)),
	}
	sourceColumns := view.Columns()
	for i, column := range q.columns {
		projected.mapping[i] = slices.Index(sourceColumns, column)
		if projected.mapping[i] == -1 {
			return nil, fmt.Errorf("column %q not found in view %q", column, q.table)
		}
	}
	return &stmt{view: projected}, nil
}

func (s *stmt) Close() error { return nil }

func (s *stmt) NumInput() int { return 0 }

func (s *stmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("sqltable: views are read only")
}

func (s *stmt) Query(args []driver.Value) (driver.Rows, error) {
	return &driverRows{view: s.view}, nil
}

// columnsView selects and orders the columns of its source.
type columnsView struct {
	source  tablestate.View
	columns []string
	mapping []int
}

func (v *columnsView) Title() string     { return v.source.Title() }
func (v *columnsView) Columns() []string { return v.columns }
func (v *columnsView) NumRows() int      { return v.source.NumRows() }

func (v *columnsView) Cell(row, col int) any {
	if col < 0 || col >= len(v.mapping) {
		return nil
	}
	return v.source.Cell(row, v.mapping[col])
}

var _ driver.Rows = new(driverRows)

type driverRows struct {
	view     tablestate.View
	rowIndex int
}

func (r *driverRows) Columns() []string {
	return r.view.Columns()
}

func (r *driverRows) Close() error {
	r.rowIndex = -1
	return nil
}

func (r *driverRows) Next(dest []driver.Value) (err error) {
	if r.rowIndex < 0 || r.rowIndex >= r.view.NumRows() {
		return io.EOF
	}
	for col := range dest {
		dest[col], err = driverValue(r.view.Cell(r.rowIndex, col))
		if err != nil {
			return err
		}
	}
	r.rowIndex++
	return nil
}

// driverValue converts a cell value to a driver.Value.
// Values that are no driver.Value and no driver.Valuer
// are converted with driver.DefaultParameterConverter
// or formatted with fmt.Sprint as last resort.
func driverValue(val any) (driver.Value, error) {
	if valuer, ok := val.(driver.Valuer); ok {
		return valuer.Value()
	}
	if driver.IsValue(val) {
		return val, nil
	}
	if converted, err := driver.DefaultParameterConverter.ConvertValue(val); err == nil {
		return converted, nil
	}
	if s, ok := val.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return nil, fmt.Errorf("value %#v of type %T is not a driver.Value", val, val)
}

type query struct {
	columns []string
	table   string
	offset  int
	limit   int
}

const identPattern = `[a-zA-Z_][\w.]*|"[^"]+"`

var queryRegexp = regexp.MustCompile(
	`^(?i:select)\s+(\*|(?:` + identPattern + `)(?:\s*,\s*(?:` + identPattern + `))*)` +
		`\s+(?i:from)\s+(` + identPattern + `)` +
		`(?:\s+(?i:limit)\s+(\d+))?` +
		`(?:\s+(?i:offset)\s+(\d+))?` +
		`(?:\s*;)*$`,
)

func parseQuery(str string) (q query, err error) {
	str = strings.TrimSpace(str)
	m := queryRegexp.FindStringSubmatch(str)
	if m == nil {
		return query{}, fmt.Errorf("invalid query %q", str)
	}
	q.columns = strings.Split(m[1], ",")
	for i := range q.columns {
		q.columns[i] = unquote(strings.TrimSpace(q.columns[i]))
	}
	q.table = unquote(m[2])
	if m[3] != "" {
		if q.limit, err = strconv.Atoi(m[3]); err != nil {
			return query{}, fmt.Errorf("invalid LIMIT in query %q: %w", str, err)
		}
	}
	if m[4] != "" {
		if q.offset, err = strconv.Atoi(m[4]); err != nil {
			return query{}, fmt.Errorf("invalid OFFSET in query %q: %w", str, err)
		}
	}
	return q, nil
}

func unquote(str string) string {
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}
	return str
}
