package tablestate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringsView(t *testing.T) {
	view := NewStringsView("clientes", [][]string{
		{" id ", "nombre"},
		{"1", "Ana"},
		{"2"},
	})
	assert.Equal(t, "clientes", view.Title())
	assert.Equal(t, []string{"id", "nombre"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	assert.Equal(t, "Ana", view.Cell(0, 1))
	assert.Equal(t, "", view.Cell(1, 1), "missing cell of short row")
	assert.Nil(t, view.Cell(2, 0))
	assert.Nil(t, view.Cell(0, 2))

	header := NewHeaderViewFrom(view)
	assert.Equal(t, 1, header.NumRows())
	assert.Equal(t, "nombre", header.Cell(0, 1))
	assert.Nil(t, header.Cell(1, 0))
}

func TestAnyValuesView(t *testing.T) {
	source := NewStringsView("s", [][]string{{"1", "Ana"}}, "id", "nombre")
	view := NewAnyValuesViewFrom(source)
	assert.Equal(t, "s", view.Title())
	assert.Equal(t, [][]any{{"1", "Ana"}}, view.Rows)
	assert.Equal(t, reflect.String, view.ReflectCell(0, 1).Kind())
	assert.False(t, view.ReflectCell(0, 5).IsValid())
}

func TestRowsView(t *testing.T) {
	type Cliente struct {
		Nombre string `json:"nombre"`
	}
	type Factura struct {
		Numero    string   `col:"Número"`
		Cliente   *Cliente `col:"-"`
		TotalEuro float64
	}
	rows := []Factura{
		{Numero: "F-1", Cliente: &Cliente{Nombre: "Ana"}, TotalEuro: 10},
		{Numero: "F-2", TotalEuro: 20},
	}

	view := NewRowsView("facturas", rows)
	assert.Equal(t, []string{"Número", "Total Euro"}, view.Columns())
	assert.Equal(t, "F-2", view.Cell(1, 0))
	assert.Equal(t, 20.0, view.Cell(1, 1))

	view = NewRowsView("facturas", rows, Col("Número", "Numero"), Col("Cliente", "cliente.nombre"), Col("TotalEuro", ""))
	assert.Equal(t, []string{"Número", "Cliente", "TotalEuro"}, view.Columns())
	assert.Equal(t, "Ana", view.Cell(0, 1))
	assert.Nil(t, view.Cell(1, 1))
	assert.Equal(t, 10.0, view.Cell(0, 2))
	assert.Nil(t, view.Cell(2, 0))
	assert.False(t, view.ReflectCell(0, -1).IsValid())
	assert.Equal(t, "F-1", view.Row(0).Numero)

	assert.Nil(t, StructColumns(reflect.TypeFor[int]()))
	assert.Equal(t, []Column{{Title: "a.b", Path: "a.b"}}, ColumnsFromPaths("a.b"))
}

func TestWindowView(t *testing.T) {
	rows := make([][]string, 25)
	for i := range rows {
		rows[i] = []string{string(rune('a' + i))}
	}
	source := NewStringsView("letras", rows, "letra")

	view := PageView(source, NewPagination(source.NumRows(), 3, 10))
	assert.Equal(t, "letras", view.Title())
	assert.Equal(t, []string{"letra"}, view.Columns())
	require.Equal(t, 5, view.NumRows())
	assert.Equal(t, "u", view.Cell(0, 0))
	assert.Equal(t, "y", view.Cell(4, 0))
	assert.Nil(t, view.Cell(5, 0))
	assert.Nil(t, view.Cell(-1, 0))

	view = &WindowView{Source: source, RowOffset: -3}
	assert.Equal(t, 25, view.NumRows())
	view = &WindowView{Source: source, RowOffset: 30}
	assert.Equal(t, 0, view.NumRows())
}

func TestViewWithTitle(t *testing.T) {
	source := NewStringsView("a", [][]string{{"1"}}, "x")
	view := ViewWithTitle(source, "b")
	assert.Equal(t, "b", view.Title())
	assert.Equal(t, "1", view.ReflectCell(0, 0).Interface())
}

func TestRecords(t *testing.T) {
	view := &AnyValuesView{
		Cols: []string{"id", "nombre"},
		Rows: [][]any{{int64(7), "Ana"}, {nil, "Eva"}},
	}
	records := RecordsFromView(view)
	assert.Equal(t, []Record{
		{"id": int64(7), "nombre": "Ana"},
		{"id": nil, "nombre": "Eva"},
	}, records)

	id := RecordID("id")
	assert.Equal(t, "7", id(records[0]))
	assert.Equal(t, "", id(records[1]))
	assert.Equal(t, "", RecordID("missing")(records[0]))
}

func TestExtraColsView(t *testing.T) {
	left := NewStringsView("t", [][]string{{"1"}, {"2"}}, "id")
	view := ExtraColsView(left, []string{"doble", "par"}, func(row, col int) any {
		if col == 0 {
			return (row + 1) * 2
		}
		return row%2 == 1
	})
	assert.Equal(t, "t", view.Title())
	assert.Equal(t, []string{"id", "doble", "par"}, view.Columns())
	assert.Equal(t, []string{"id"}, left.Columns(), "left columns not modified")
	assert.Equal(t, 2, view.NumRows())
	assert.Equal(t, "2", view.Cell(1, 0))
	assert.Equal(t, 4, view.Cell(1, 1))
	assert.Equal(t, true, view.ReflectCell(1, 2).Interface())
	assert.Nil(t, view.Cell(1, 3))
	assert.Nil(t, view.Cell(2, 1))
	assert.False(t, view.ReflectCell(0, 3).IsValid())
}
