package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEmptyStringRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Qty"},
		{"", ""},
		nil,
		{"Tornillo", "12"},
		{"", "3"},
	}
	got := RemoveEmptyStringRows(rows)
	require.Equal(t, [][]string{{"Name", "Qty"}, {"Tornillo", "12"}, {"", "3"}}, got)
	assert.Empty(t, RemoveEmptyStringRows(nil))
}

func TestRemoveEmptyStringColumns(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		wantCols int
		wantRows [][]string
	}{
		{name: "nil", rows: nil, wantCols: 0, wantRows: nil},
		{
			name:     "trailing empty",
			rows:     [][]string{{"a", "", ""}, {"b", "c", ""}},
			wantCols: 2,
			wantRows: [][]string{{"a", ""}, {"b", "c"}},
		},
		{
			name:     "ragged",
			rows:     [][]string{{"a"}, {"b", "", "d", ""}},
			wantCols: 3,
			wantRows: [][]string{{"a"}, {"b", "", "d"}},
		},
		{
			name:     "all empty",
			rows:     [][]string{{"", ""}, {""}},
			wantCols: 0,
			wantRows: [][]string{{}, {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numCols := RemoveEmptyStringColumns(tt.rows)
			assert.Equal(t, tt.wantCols, numCols)
			assert.Equal(t, tt.wantRows, tt.rows)
		})
	}
}

func TestStringColumnWidths(t *testing.T) {
	rows := [][]string{{"Año", "x"}, {"a", "Größe"}, {"abcd"}}
	assert.Equal(t, []int{4, 5}, StringColumnWidths(rows, -1))
	assert.Equal(t, []int{4}, StringColumnWidths(rows, 1))
	assert.Nil(t, StringColumnWidths(nil, -1))
}
