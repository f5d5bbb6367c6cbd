package tablestate

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNIF string

func (n testNIF) Validate() error {
	if len(n) != 9 {
		return errors.New("NIF must have 9 characters")
	}
	return nil
}

type testClienteRow struct {
	ID      int64           `json:"id"`
	Nombre  string          `json:"nombre"`
	NIF     testNIF         `json:"nif"`
	Alta    time.Time       `json:"alta"`
	Credito decimal.Decimal `json:"credito"`
	Activo  bool            `json:"activo"`
}

func TestViewToStructSlice(t *testing.T) {
	view := NewStringsView("clientes", [][]string{
		{"id", "nombre", "nif", "alta", "credito", "activo", "extra"},
		{"1", "Ana García", "12345678Z", "2024-02-01", "1500.50", "true", "x"},
		{"2", "Luis", "87654321X", "15/03/2023", "", "false"},
	})

	rows, err := ViewToStructSlice[testClienteRow](view, nil, "id", "nombre")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, "Ana García", rows[0].Nombre)
	assert.Equal(t, testNIF("12345678Z"), rows[0].NIF)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rows[0].Alta)
	assert.Equal(t, "1500.5", rows[0].Credito.String())
	assert.True(t, rows[0].Activo)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), rows[1].Alta)
	assert.True(t, rows[1].Credito.IsZero())
	assert.False(t, rows[1].Activo)

	ptrRows, err := ViewToStructSlice[*testClienteRow](view, nil)
	require.NoError(t, err)
	require.Len(t, ptrRows, 2)
	assert.Equal(t, "Luis", ptrRows[1].Nombre)
}

func TestViewToStructSlice_AnyValues(t *testing.T) {
	view := &AnyValuesView{
		Cols: []string{"ID", "Nombre", "Credito"},
		Rows: [][]any{{int64(3), []byte("Eva"), 12.5}},
	}
	rows, err := ViewToStructSlice[testClienteRow](view, &StructFieldNaming{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows[0].ID)
	assert.Equal(t, "Eva", rows[0].Nombre)
	assert.Equal(t, "12.5", rows[0].Credito.String())
}

func TestViewToStructSlice_Errors(t *testing.T) {
	view := NewStringsView("clientes", [][]string{{"1", "Ana", "123"}}, "id", "nombre", "nif")

	_, err := ViewToStructSlice[int](view, nil)
	assert.ErrorContains(t, err, "not a struct")

	_, err = ViewToStructSlice[testClienteRow](view, nil, "alta")
	assert.ErrorContains(t, err, `required column "alta" not found in view "clientes"`)

	_, err = ViewToStructSlice[struct{ ID int }](view, nil, "nombre")
	assert.ErrorContains(t, err, `required column "nombre" not found as field`)

	_, err = ViewToStructSlice[testClienteRow](view, nil)
	assert.ErrorContains(t, err, `row 0 column "nif": NIF must have 9 characters`)
}

func TestCallValidateMethod(t *testing.T) {
	assert.NoError(t, CallValidateMethod(reflect.Value{}))
	assert.Error(t, CallValidateMethod(reflect.ValueOf(testNIF("1"))))
	assert.NoError(t, CallValidateMethod(reflect.ValueOf(testNIF("123456789"))))
	assert.NoError(t, CallValidateMethod(reflect.ValueOf(42)))
}
