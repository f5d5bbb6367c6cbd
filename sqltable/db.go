package sqltable

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/domonda/go-tablestate"
)

// NewViewsDB returns a read only *sql.DB that answers
// queries of the form
//
//	SELECT * | col1, col2 FROM name [LIMIT n] [OFFSET m]
//
// with the rows of the view registered under name.
// Query arguments are not supported.
func NewViewsDB(views map[string]tablestate.View) *sql.DB {
	return sql.OpenDB(database{views: views})
}

// NewViewDB returns a *sql.DB with view as only table, see NewViewsDB.
func NewViewDB(viewName string, view tablestate.View) *sql.DB {
	return NewViewsDB(map[string]tablestate.View{
		viewName: view,
	})
}

type database struct {
	views map[string]tablestate.View
}

func (c database) Connect(context.Context) (driver.Conn, error) {
	return c, nil
}

func (c database) Driver() driver.Driver {
	return c
}

func (c database) Open(string) (driver.Conn, error) {
	return c, nil
}

func (c database) Prepare(query string) (driver.Stmt, error) {
	return newStmt(c.views, query)
}

func (database) Close() error {
	return nil
}

func (c database) Begin() (driver.Tx, error) {
	return c, nil
}

func (database) Commit() error {
	return nil
}

func (database) Rollback() error {
	return nil
}
