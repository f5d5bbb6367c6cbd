package termtable

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tablestate"
)

func testView() *tablestate.StringsView {
	return tablestate.NewStringsView("1-3 of 3", [][]string{
		{"Numero", "Cliente"},
		{"F-1", "Ferretería López"},
		{"F-2", "Ana"},
		{"F-3", "Eva"},
	})
}

func TestWriter_Render(t *testing.T) {
	ctx := context.Background()
	plain := lipgloss.NewStyle().Padding(0, 1)
	upper := plain.Transform(strings.ToUpper)

	out, err := NewWriter().
		WithPlainStyles().
		WithStyles(plain, plain, upper).
		WithSelected(func(row int) bool { return row == 1 }).
		WithFooter("page 1 of 1").
		Render(ctx, testView())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "1-3 of 3", strings.TrimSpace(lines[0]))
	assert.Equal(t, []string{"Numero", "Cliente"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"F-1", "Ferretería", "López"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"F-2", "ANA"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"F-3", "Eva"}, strings.Fields(lines[4]))
	assert.Equal(t, "page 1 of 1", strings.TrimSpace(lines[5]))

	// Columns are aligned
	assert.Equal(t, strings.Index(lines[1], "Cliente"), strings.Index(lines[2], "Ferretería"))
	assert.Equal(t, strings.Index(lines[1], "Cliente"), strings.Index(lines[4], "Eva"))
}

func TestWriter_MaxCellWidth(t *testing.T) {
	ctx := context.Background()
	out, err := NewWriter().WithPlainStyles().WithMaxCellWidth(5).Render(ctx, testView())
	require.NoError(t, err)
	assert.Contains(t, out, "Ferr…")
	assert.NotContains(t, out, "López")

	out, err = NewWriter().WithPlainStyles().WithMaxCellWidth(0).Render(ctx, testView())
	require.NoError(t, err)
	assert.Contains(t, out, "Ferretería López")
}

func TestWriter_WriteView(t *testing.T) {
	var buf bytes.Buffer
	view := tablestate.NewStringsView("", [][]string{{"A"}, {"x"}})
	err := NewWriter().
		WithPlainStyles().
		WithFormatter(tablestate.PrintfCellFormatter("<%s>")).
		WriteView(context.Background(), &buf, view)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A", strings.TrimSpace(lines[0]))
	assert.Equal(t, "<x>", strings.TrimSpace(lines[1]))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, NewWriter().WriteView(ctx, &buf, view))
}
