package tablestate

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompareValues(t *testing.T) {
	var nilPtr *int
	one := 1
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "ints", a: 2, b: 10, want: -1},
		{name: "int and float", a: 2, b: 1.5, want: 1},
		{name: "uint and int", a: uint8(3), b: int64(3), want: 0},
		{name: "negative int and uint", a: -1, b: uint(1), want: -1},
		{name: "strings", a: "b", b: "a", want: 1},
		{name: "strings case sensitive", a: "B", b: "a", want: -1},
		{name: "bools", a: false, b: true, want: -1},
		{name: "equal bools", a: true, b: true, want: 0},
		{name: "times", a: t0, b: t0.Add(time.Hour), want: -1},
		{name: "decimals", a: decimal.RequireFromString("10.5"), b: decimal.RequireFromString("9.75"), want: 1},
		{name: "equal decimals", a: decimal.RequireFromString("1.50"), b: decimal.RequireFromString("1.5"), want: 0},
		{name: "pointer dereferenced", a: &one, b: 0, want: 1},
		{name: "nil first", a: nil, b: 0, want: -1},
		{name: "nil pointer first", a: nilPtr, b: "", want: -1},
		{name: "both absent", a: nil, b: nilPtr, want: 0},
		{name: "bool before number", a: true, b: 0, want: -1},
		{name: "number before string", a: 100, b: "1", want: -1},
		{name: "string before time", a: "z", b: t0, want: -1},
		{name: "others by fmt.Sprint", a: []int{2}, b: []int{1}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareValues(reflect.ValueOf(tt.a), reflect.ValueOf(tt.b)))
			assert.Equal(t, -tt.want, CompareValues(reflect.ValueOf(tt.b), reflect.ValueOf(tt.a)), "reversed")
		})
	}
}

func TestSortRows(t *testing.T) {
	type row struct {
		ID    int
		Fecha time.Time
	}
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	rows := []row{{1, day(3)}, {2, day(1)}, {3, time.Time{}}, {4, day(1)}}

	sorted := SortRows(rows, SortConfig{Key: "Fecha"})
	assert.Equal(t, []row{{3, time.Time{}}, {2, day(1)}, {4, day(1)}, {1, day(3)}}, sorted)

	sorted = SortRows(rows, SortConfig{Key: "Fecha", Direction: Descending})
	assert.Equal(t, []row{{1, day(3)}, {2, day(1)}, {4, day(1)}, {3, time.Time{}}}, sorted)

	assert.Equal(t, rows, SortRows(rows, SortConfig{}))
	assert.Equal(t, []row{{1, day(3)}, {2, day(1)}, {3, time.Time{}}, {4, day(1)}}, rows, "input not modified")
}

func TestSortConfig_Toggle(t *testing.T) {
	var c SortConfig
	c = c.Toggle("a")
	assert.Equal(t, SortConfig{Key: "a", Direction: Ascending}, c)
	c = c.Toggle("a")
	assert.Equal(t, SortConfig{Key: "a", Direction: Descending}, c)
	assert.Equal(t, "desc", c.Direction.String())
	c = c.Toggle("b")
	assert.Equal(t, SortConfig{Key: "b", Direction: Ascending}, c)
	assert.Equal(t, "asc", c.Direction.String())
}

func TestFilterRows(t *testing.T) {
	rows := []Record{
		{"nombre": "Ana García", "nif": "12345678Z"},
		{"nombre": "Luis", "nif": nil},
		{"nombre": "Eva", "importe": 125.5},
	}
	fields := []string{"nombre", "nif", "importe"}

	assert.Equal(t, rows, FilterRows(rows, "", fields))
	assert.Equal(t, rows, FilterRows(rows, "x", nil))
	assert.Equal(t, rows[:1], FilterRows(rows, "GARCÍA", fields))
	assert.Equal(t, rows[:1], FilterRows(rows, "678z", fields))
	assert.Equal(t, rows[2:], FilterRows(rows, "125.5", fields))
	assert.Empty(t, FilterRows(rows, "nil", fields))

	assert.True(t, MatchesSearch(rows[1], "LUI", fields))
	assert.False(t, MatchesSearch(rows[1], "ana", fields))
}
