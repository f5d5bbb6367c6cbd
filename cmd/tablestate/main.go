// Command tablestate loads a table from a CSV, Excel or SQLite file,
// applies search, sort, page and selection like an interactive table view
// and writes the visible page to stdout.
//
// Usage:
//
//	tablestate -in facturas.csv -fields numero,cliente -search ana -sort total -sort total -page 2
//	tablestate -in ventas.db -query 'SELECT * FROM facturas' -format html
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
)

type options struct {
	in         string
	query      string
	sheet      string
	idColumn   string
	search     string
	fields     string
	columns    string
	sorts      []string
	selects    []string
	selectAll  bool
	selectCol  string
	page       int
	pageSize   int
	format     string
	out        string
	configFile string
	logLevel   string
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "", "Input file (.csv, .xlsx, .db/.sqlite)")
	flag.StringVar(&opts.query, "query", "", "SQL query for SQLite input files")
	flag.StringVar(&opts.sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	flag.StringVar(&opts.idColumn, "id", "", "Column that identifies a row (default from config: id)")
	flag.StringVar(&opts.search, "search", "", "Search term")
	flag.StringVar(&opts.fields, "fields", "", "Comma separated dotted paths the search matches against")
	flag.StringVar(&opts.columns, "columns", "", "Comma separated dotted paths of the written columns (default: all)")
	flag.Func("sort", "Sort by dotted path, repeat to toggle the direction", func(key string) error {
		opts.sorts = append(opts.sorts, key)
		return nil
	})
	flag.Func("select", "Toggle the selection of a row ID, can be repeated", func(id string) error {
		opts.selects = append(opts.selects, id)
		return nil
	})
	flag.BoolVar(&opts.selectAll, "select-all", false, "Toggle the selection of all rows of the page")
	flag.StringVar(&opts.selectCol, "selected-col", "", "Add a column with this title marking the selected rows")
	flag.IntVar(&opts.page, "page", 0, "Page number starting at 1")
	flag.IntVar(&opts.pageSize, "page-size", 0, "Rows per page (default from config: 10)")
	flag.StringVar(&opts.format, "format", "", "Output format: csv, html, text, xlsx (default from config: text)")
	flag.StringVar(&opts.out, "out", "", "Output file (default: stdout)")
	flag.StringVar(&opts.configFile, "config", "", "Config file (default: ./tablestate.yaml if it exists)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	if opts.in == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tablestate: %v\n", err)
		os.Exit(1)
	}
}

func splitList(list string) []string {
	var items []string
	for item := range strings.SplitSeq(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
