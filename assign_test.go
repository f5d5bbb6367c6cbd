package tablestate

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullString struct {
	Str   string
	Valid bool
}

func (n nullString) IsNull() bool { return !n.Valid }

type euros int64

func (e euros) String() string { return decimal.New(int64(e), -2).StringFixed(2) + " €" }

func TestAssignValue(t *testing.T) {
	id := uuid.MustParse("5c3b1b4e-9f7a-4d2e-8a51-6f0c2d9e1a77")
	seven := 7

	tests := []struct {
		name string
		dst  any // pointer to the destination
		src  any
		want any
	}{
		{name: "string to string", dst: new(string), src: "Ana", want: "Ana"},
		{name: "int to float", dst: new(float64), src: 3, want: 3.0},
		{name: "int64 to int", dst: new(int), src: int64(42), want: 42},
		{name: "nil to int", dst: ptr(7), src: nil, want: 0},
		{name: "null to string", dst: new(string), src: nullString{}, want: ""},
		{name: "string to int", dst: new(int), src: " 12 ", want: 12},
		{name: "string to uint8", dst: new(uint8), src: "200", want: uint8(200)},
		{name: "string to float", dst: new(float64), src: "19.99", want: 19.99},
		{name: "string to bool", dst: new(bool), src: "true", want: true},
		{name: "empty string to int", dst: ptr(7), src: "", want: 0},
		{name: "int to bool", dst: new(bool), src: 1, want: true},
		{name: "bool to int", dst: new(int), src: true, want: 1},
		{name: "float to bool", dst: new(bool), src: 0.0, want: false},
		{name: "int to string", dst: new(string), src: 65, want: "65"},
		{name: "float to string", dst: new(string), src: 1.5, want: "1.5"},
		{name: "stringer to string", dst: new(string), src: euros(1250), want: "12.50 €"},
		{name: "text marshaler to string", dst: new(string), src: id, want: id.String()},
		{name: "string to decimal", dst: new(decimal.Decimal), src: "10.50", want: decimal.RequireFromString("10.5")},
		{name: "string to uuid", dst: new(uuid.UUID), src: id.String(), want: id},
		{name: "string to time", dst: new(time.Time), src: "31/12/2024", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "time to time", dst: new(time.Time), src: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "pointer source", dst: new(int), src: &seven, want: 7},
		{name: "pointer destination", dst: new(*int), src: "5", want: ptr(5)},
		{name: "bytes to string", dst: new(string), src: []byte("blob"), want: "blob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := reflect.ValueOf(tt.dst).Elem()
			err := AssignValue(dst, reflect.ValueOf(tt.src))
			require.NoError(t, err)
			got := dst.Interface()
			if d, ok := got.(decimal.Decimal); ok {
				assert.True(t, d.Equal(tt.want.(decimal.Decimal)), "got %s", d)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignValue_Errors(t *testing.T) {
	assert.Error(t, AssignValue(reflect.ValueOf(0), reflect.ValueOf(1)), "not settable")

	var i int8
	assert.ErrorContains(t, AssignValue(reflect.ValueOf(&i).Elem(), reflect.ValueOf("1000")), "overflows")

	var n int
	assert.Error(t, AssignValue(reflect.ValueOf(&n).Elem(), reflect.ValueOf("uno")))

	var d decimal.Decimal
	assert.Error(t, AssignValue(reflect.ValueOf(&d).Elem(), reflect.ValueOf("1,5x")))

	var tm time.Time
	assert.ErrorContains(t, AssignValue(reflect.ValueOf(&tm).Elem(), reflect.ValueOf("ayer")), "cannot parse")

	var m map[string]int
	err := AssignValue(reflect.ValueOf(&m).Elem(), reflect.ValueOf(3))
	assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)
}

func ptr[T any](v T) *T { return &v }
