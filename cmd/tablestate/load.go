package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	fs "github.com/ungerik/go-fs"
	_ "modernc.org/sqlite"

	"github.com/domonda/go-tablestate"
	"github.com/domonda/go-tablestate/csvtable"
	"github.com/domonda/go-tablestate/exceltable"
	"github.com/domonda/go-tablestate/sqltable"
)

// load reads the table of file selecting
// the reader by the file extension.
func load(ctx context.Context, file fs.File, query, sheet string) (tablestate.View, error) {
	if !file.Exists() {
		return nil, fmt.Errorf("input file %q does not exist", file)
	}
	switch ext := strings.ToLower(file.Ext()); ext {
	case ".csv", ".tsv", ".txt":
		data, err := file.ReadAllContext(ctx)
		if err != nil {
			return nil, err
		}
		rows, _, err := csvtable.ParseDetectFormat(data, nil)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file.Name(), err)
		}
		rows = csvtable.RemoveEmptyRows(rows)
		if len(rows) == 0 {
			return nil, fmt.Errorf("parse %s: %w", file.Name(), csvtable.ErrNoHeaderRow)
		}
		return tablestate.NewStringsView(file.Name(), rows), nil

	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		data, err := file.ReadAllContext(ctx)
		if err != nil {
			return nil, err
		}
		if sheet == "" {
			return exceltable.ReadFirstSheet(bytes.NewReader(data))
		}
		return exceltable.ReadSheet(bytes.NewReader(data), sheet, false)

	case ".db", ".sqlite", ".sqlite3":
		if query == "" {
			return nil, errors.New("-query is required for SQLite files")
		}
		return querySQLite(ctx, file.LocalPath(), query)

	default:
		return nil, fmt.Errorf("unsupported input file extension %q", ext)
	}
}

func querySQLite(ctx context.Context, path, query string) (view tablestate.View, err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	result, err := sqltable.QueryView(ctx, db, path, query)
	if err != nil {
		return nil, err
	}
	return sqltable.BytesToStrings(result), nil
}
