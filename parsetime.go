package tablestate

import (
	"fmt"
	"time"
)

// TimeFormats are the layouts tried in order by ParseTime.
var TimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04", // HTML datetime-local input
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"2006-01-02 15:04:05.999999999 -0700 MST", // time.Time.String
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseTime parses str with the first matching layout of TimeFormats
// and returns the time together with the matching layout.
// Day-first dates like "31/12/2024" are parsed
// as they are written in Spain and most of Europe.
func ParseTime(str string) (t time.Time, format string, err error) {
	for _, format := range TimeFormats {
		t, err = time.Parse(format, str)
		if err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("cannot parse %q as time", str)
}
