package tablestate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		str        string
		want       time.Time
		wantFormat string
	}{
		{str: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), wantFormat: time.DateOnly},
		{str: "2024-12-31 08:15:00", want: time.Date(2024, 12, 31, 8, 15, 0, 0, time.UTC), wantFormat: time.DateTime},
		{str: "2024-12-31T08:15", want: time.Date(2024, 12, 31, 8, 15, 0, 0, time.UTC), wantFormat: "2006-01-02T15:04"},
		{str: "2024-12-31T08:15:00Z", want: time.Date(2024, 12, 31, 8, 15, 0, 0, time.UTC), wantFormat: time.RFC3339Nano},
		{str: "05/01/2024", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), wantFormat: "02/01/2006"},
		{str: "05.01.2024", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), wantFormat: "02.01.2006"},
		{str: "05-01-2024", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), wantFormat: "02-01-2006"},
		{str: "05/01/2024 17:30", want: time.Date(2024, 1, 5, 17, 30, 0, 0, time.UTC), wantFormat: "02/01/2006 15:04"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			got, format, err := ParseTime(tt.str)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, tt.wantFormat, format)
		})
	}

	_, _, err := ParseTime("31/13/2024")
	assert.Error(t, err)
	_, _, err = ParseTime("")
	assert.Error(t, err)
}
