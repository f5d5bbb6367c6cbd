package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	fs "github.com/ungerik/go-fs"
	"go.uber.org/zap"

	"github.com/domonda/go-tablestate"
	"github.com/domonda/go-tablestate/csvtable"
	"github.com/domonda/go-tablestate/exceltable"
	"github.com/domonda/go-tablestate/htmltable"
	"github.com/domonda/go-tablestate/internal/config"
	"github.com/domonda/go-tablestate/internal/logger"
	"github.com/domonda/go-tablestate/termtable"
)

type recordController = tablestate.Controller[tablestate.Record, string]

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	applyOptions(cfg, opts)
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	source, err := load(ctx, fileArg(opts.in), opts.query, opts.sheet)
	if err != nil {
		return err
	}
	log.Info("Table loaded",
		zap.String("in", opts.in),
		zap.Strings("columns", source.Columns()),
		zap.Int("rows", source.NumRows()),
	)
	if !slices.Contains(source.Columns(), cfg.Table.IDColumn) {
		return fmt.Errorf("id column %q not found in columns %q", cfg.Table.IDColumn, source.Columns())
	}

	ctrl := tablestate.NewController(tablestate.RecordID(cfg.Table.IDColumn), cfg.Table.Config).
		WithLogger(log.Named("table"))
	changes := 0
	ctrl.OnChange(func() { changes++ })

	ctrl.SetDataset(tablestate.RecordsFromView(source))
	applyState(ctrl, opts)

	log.Info("Table state",
		zap.Int("changes", changes),
		zap.Stringer("rows", ctrl.Pagination()),
		zap.Int("page", ctrl.Pagination().CurrentPage),
		zap.Int("pages", ctrl.Pagination().TotalPages),
		zap.Int("selected", ctrl.SelectedCount()),
	)

	columns := splitList(opts.columns)
	if len(columns) == 0 {
		columns = source.Columns()
	}
	page := ctrl.View(tablestate.ColumnsFromPaths(columns...)...)
	isSelected := func(row int) bool {
		return ctrl.IsRowSelected(page.Row(row))
	}
	var view tablestate.View = page
	if opts.selectCol != "" {
		view = tablestate.ExtraColsView(page, []string{opts.selectCol}, func(row, _ int) any {
			if isSelected(row) {
				return "x"
			}
			return ""
		})
	}

	if opts.out == "" {
		return write(ctx, cfg, ctrl, view, isSelected, stdout)
	}
	var buf bytes.Buffer
	if err = write(ctx, cfg, ctrl, view, isSelected, &buf); err != nil {
		return err
	}
	return fileArg(opts.out).WriteAll(buf.Bytes())
}

// fileArg returns path as fs.File
// with local paths made absolute.
func fileArg(path string) fs.File {
	if strings.Contains(path, "://") {
		return fs.File(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return fs.File(abs)
	}
	return fs.File(path)
}

func applyOptions(cfg *config.Config, opts *options) {
	if opts.idColumn != "" {
		cfg.Table.IDColumn = opts.idColumn
	}
	if fields := splitList(opts.fields); len(fields) > 0 {
		cfg.Table.SearchFields = fields
	}
	if opts.pageSize > 0 {
		cfg.Table.PageSize = opts.pageSize
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
}

// applyState replays the user interactions
// in the order a table view would receive them.
func applyState(ctrl *recordController, opts *options) {
	if opts.search != "" {
		ctrl.Search(opts.search)
	}
	for _, key := range opts.sorts {
		ctrl.Sort(key)
	}
	if opts.page > 0 {
		ctrl.SetPage(opts.page)
	}
	for _, id := range opts.selects {
		ctrl.ToggleSelect(id)
	}
	if opts.selectAll {
		ctrl.ToggleSelectAll()
	}
}

func write(ctx context.Context, cfg *config.Config, ctrl *recordController, page tablestate.View, isSelected func(row int) bool, dest io.Writer) error {
	switch cfg.Output.Format {
	case config.FormatCSV:
		writer := csvtable.NewWriter().
			WithHeaderRow(cfg.Output.HeaderRow).
			WithDelimiter(cfg.Delimiter())
		if cfg.Output.Encoding != "" {
			var err error
			writer, err = writer.WithEncoding(cfg.Output.Encoding)
			if err != nil {
				return err
			}
		}
		return writer.WriteView(ctx, dest, page)

	case config.FormatHTML:
		return htmltable.NewWriter().
			WithHeaderRow(cfg.Output.HeaderRow).
			WithRowClass(func(row int) string {
				if isSelected(row) {
					return "selected"
				}
				return ""
			}).
			WriteView(ctx, dest, page)

	case config.FormatExcel:
		return exceltable.WriteView(ctx, dest, page)

	default:
		p := ctrl.Pagination()
		footer := fmt.Sprintf("page %d of %d", p.CurrentPage, p.TotalPages)
		if ctrl.HasSelection() {
			footer += fmt.Sprintf(", %d selected", ctrl.SelectedCount())
		}
		return termtable.NewWriter().
			WithSelected(isSelected).
			WithFooter(footer).
			WriteView(ctx, dest, page)
	}
}
