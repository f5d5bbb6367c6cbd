package tablestate

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectTypeCellFormatter(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("12.5")
	view := &AnyValuesView{
		Cols: []string{"a"},
		Rows: [][]any{{amount}, {&amount}, {"texto"}, {7}, {nil}},
	}
	euros := CellFormatterFunc(func(ctx context.Context, view View, row, col int) (string, bool, error) {
		d, ok := AsReflectCellView(view).ReflectCell(row, col).Interface().(decimal.Decimal)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		return d.StringFixed(2) + " €", false, nil
	})
	upper := CellFormatterFunc(func(ctx context.Context, view View, row, col int) (string, bool, error) {
		return strings.ToUpper(view.Cell(row, col).(string)), false, nil
	})

	var nilFormatter *ReflectTypeCellFormatter
	_, _, err := nilFormatter.FormatCell(ctx, view, 0, 0)
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	f := nilFormatter.
		WithTypeFormatter(reflect.TypeFor[decimal.Decimal](), euros).
		WithKindFormatter(reflect.String, upper)

	str, raw, err := f.FormatCell(ctx, view, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "12.50 €", str)
	assert.False(t, raw)

	// Pointer matched by element type, but euros only handles values
	_, _, err = f.FormatCell(ctx, view, 1, 0)
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	str, _, err = f.FormatCell(ctx, view, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "TEXTO", str)

	_, _, err = f.FormatCell(ctx, view, 3, 0)
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	withDefault := f.WithDefaultFormatter(RawCellString("-"))
	str, raw, err = withDefault.FormatCell(ctx, view, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "-", str)
	assert.True(t, raw)
	assert.Nil(t, f.Default, "With methods return copies")

	str, _, err = FormatCellOrSprint(ctx, f, view, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "7", str)

	str, _, err = FormatCellOrSprint(ctx, nil, view, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "12.5", str, "pointer dereferenced")

	str, _, err = FormatCellOrSprint(ctx, nil, view, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "", str)
}

func TestPrintfCellFormatter(t *testing.T) {
	view := &AnyValuesView{Cols: []string{"a"}, Rows: [][]any{{3.14159}}}
	str, raw, err := PrintfCellFormatter("%.2f").FormatCell(context.Background(), view, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "3.14", str)
	assert.False(t, raw)
}

func TestFormatViewAsStrings(t *testing.T) {
	view := NewRowsView("t", []Record{
		{"n": 1, "s": "uno"},
		{"n": 2},
	}, ColumnsFromPaths("n", "s")...)

	rows, err := FormatViewAsStrings(context.Background(), view, PrintfCellFormatter("<%v>"), true)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"n", "s"}, {"<1>", "<uno>"}, {"<2>", "<<nil>>"}}, rows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FormatViewAsStrings(ctx, view, nil, false)
	assert.ErrorIs(t, err, context.Canceled)
}
