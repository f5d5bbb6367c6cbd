// Package sqltable loads SQL query results as tablestate views and records
// and makes views queryable through database/sql.
//
// Any database/sql driver can be used as source, for example SQLite:
//
//	db, err := sql.Open("sqlite", "ventas.db")
//	...
//	records, err := sqltable.QueryRecords(ctx, db, `SELECT id, numero, total FROM facturas`)
//	...
//	ctrl := tablestate.NewController(tablestate.RecordID("id"), tablestate.DefaultConfig())
//	ctrl.SetDataset(records)
package sqltable

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/domonda/go-tablestate"
)

// ScanRowsAsView reads all rows into an AnyValuesView
// with the result columns as view columns and closes rows.
// Byte slices are copied, all other values are kept
// as returned by the driver.
func ScanRowsAsView(ctx context.Context, rows Rows) (*tablestate.AnyValuesView, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	view := &tablestate.AnyValuesView{Cols: columns}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return view, err
		}
		view.Rows = append(view.Rows, scannedValues)
	}
	return view, rows.Err()
}

// QueryView executes query and returns the result as view
// with title as view title.
func QueryView(ctx context.Context, db Querier, title, query string, args ...any) (*tablestate.AnyValuesView, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	view, err := ScanRowsAsView(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("scan result of %q: %w", query, err)
	}
	view.Tit = title
	return view, nil
}

// QueryRecords executes query and returns every result row
// as Record keyed by the result column names.
// Byte slices are returned as strings.
func QueryRecords(ctx context.Context, db Querier, query string, args ...any) ([]tablestate.Record, error) {
	view, err := QueryView(ctx, db, "", query, args...)
	if err != nil {
		return nil, err
	}
	return tablestate.RecordsFromView(BytesToStrings(view)), nil
}

// BytesToStrings replaces all []byte cells of view
// with strings and returns the view.
func BytesToStrings(view *tablestate.AnyValuesView) *tablestate.AnyValuesView {
	for _, row := range view.Rows {
		for col, val := range row {
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			}
		}
	}
	return view
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Bytes are only valid until the next call of Scan
		src = slices.Clone(b)
	}
	*s.dest = src
	return nil
}
