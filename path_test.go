package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	type Cliente struct {
		Nombre string   `json:"nombre"`
		Tags   []string `json:"tags"`
	}
	type Factura struct {
		Numero  string         `json:"numero"`
		Cliente *Cliente       `json:"cliente"`
		Extra   map[string]any `json:"extra"`
		Ignored string         `json:"-"`
	}
	factura := &Factura{
		Numero:  "F-1",
		Cliente: &Cliente{Nombre: "Ana", Tags: []string{"vip", "sevilla"}},
		Extra:   map[string]any{"canal": "web", "nested": map[string]any{"x": 1}},
	}
	var nilFactura *Factura

	tests := []struct {
		name   string
		row    any
		path   string
		want   any
		wantOK bool
	}{
		{name: "top level", row: factura, path: "numero", want: "F-1", wantOK: true},
		{name: "nested", row: factura, path: "cliente.nombre", want: "Ana", wantOK: true},
		{name: "field name case-insensitive", row: factura, path: "CLIENTE.Nombre", want: "Ana", wantOK: true},
		{name: "struct value", row: *factura, path: "cliente.nombre", want: "Ana", wantOK: true},
		{name: "slice index", row: factura, path: "cliente.tags.1", want: "sevilla", wantOK: true},
		{name: "slice index out of range", row: factura, path: "cliente.tags.2"},
		{name: "slice non numeric index", row: factura, path: "cliente.tags.first"},
		{name: "map key", row: factura, path: "extra.canal", want: "web", wantOK: true},
		{name: "nested map", row: factura, path: "extra.nested.x", want: 1, wantOK: true},
		{name: "missing map key", row: factura, path: "extra.nope"},
		{name: "missing field", row: factura, path: "cliente.apellido"},
		{name: "ignored field", row: factura, path: "Ignored"},
		{name: "nil intermediate", row: &Factura{}, path: "cliente.nombre"},
		{name: "nil row pointer", row: nilFactura, path: "numero"},
		{name: "nil row", row: nil, path: "numero"},
		{name: "empty path", row: factura, path: ""},
		{name: "descend into string", row: factura, path: "numero.x"},
		{name: "record", row: Record{"cliente": Record{"nombre": "Eva"}}, path: "cliente.nombre", want: "Eva", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePath(tt.row, tt.path)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Interface())
			} else {
				assert.False(t, got.IsValid())
			}
		})
	}
}
