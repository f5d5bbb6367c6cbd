package csvtable

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-tablestate"
)

// ParseDetectFormat parses CSV data after detecting
// its encoding, line endings and separator.
//
// The encoding is detected by decoding with config.Encodings
// and checking for config.EncodingTests characters.
// "\r\n" line endings are preferred if present.
// The separator is taken from a "sep=X" header line
// or is the most frequent of comma, semicolon and tab
// outside of quoted fields, defaulting to comma.
//
// If config is nil, NewDefaultFormatDetectionConfig is used.
func ParseDetectFormat(csv []byte, config *FormatDetectionConfig) (rows [][]string, format *Format, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}
	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}

	format = new(Format)
	csv, format.Encoding, err = charset.AutoDecode(csv, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	csv = charset.TrimBOM(csv, charset.BOMUTF8)
	csv = sanitizeUTF8(csv)

	if bytes.Contains(csv, []byte("\r\n")) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	csv, format.Separator = trimSepHeaderLine(csv, format.Newline)
	if format.Separator == "" {
		format.Separator = detectSeparator(csv)
	}

	rows, err = parse(csv, format.Separator)
	return rows, format, err
}

// ParseWithFormat parses CSV data in a known format.
// A "sep=X" header line is removed
// and must declare the format's separator.
func ParseWithFormat(csv []byte, format *Format) (rows [][]string, err error) {
	err = format.Validate()
	if err != nil {
		return nil, err
	}

	if format.Encoding == "UTF-8" {
		csv = charset.TrimBOM(csv, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		csv, err = enc.Decode(csv)
		if err != nil {
			return nil, err
		}
	}
	csv = sanitizeUTF8(csv)

	csv, sep := trimSepHeaderLine(csv, format.Newline)
	if sep != "" && sep != format.Separator {
		return nil, fmt.Errorf("CSV header line declares separator %q but format has %q", sep, format.Separator)
	}

	return parse(csv, format.Separator)
}

// RemoveEmptyRows removes rows without any non empty field.
func RemoveEmptyRows(rows [][]string) [][]string {
	return tablestate.RemoveEmptyStringRows(rows)
}

// parse splits csv into rows of fields.
// Quoted fields may contain separators, newlines
// and quotes escaped by doubling them.
// Carriage returns outside of quoted fields are ignored
// and empty lines result in nil rows.
func parse(csv []byte, separator string) (rows [][]string, err error) {
	var (
		sep      = []byte(separator)
		row      []string
		field    []byte
		inQuotes bool
		quoted   bool // current field started with a quote
		line     = 1
	)
	endField := func() {
		row = append(row, string(field))
		field = field[:0]
		quoted = false
	}
	endRow := func(lastQuoted bool) {
		if len(row) == 1 && row[0] == "" && !lastQuoted {
			row = nil
		}
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(csv); i++ {
		c := csv[i]
		switch {
		case inQuotes && c == '"':
			if i+1 < len(csv) && csv[i+1] == '"' {
				field = append(field, '"')
				i++
			} else {
				inQuotes = false
			}

		case inQuotes:
			if c == '\n' {
				line++
			}
			if c != '\r' {
				field = append(field, c)
			}

		case c == '"' && len(field) == 0 && !quoted:
			inQuotes = true
			quoted = true

		case c == '"':
			// Stray quote inside an unquoted field
			field = append(field, c)

		case bytes.HasPrefix(csv[i:], sep):
			endField()
			i += len(sep) - 1

		case c == '\r':
			// Part of a line ending

		case c == '\n':
			lastQuoted := quoted
			endField()
			endRow(lastQuoted)
			line++

		default:
			field = append(field, c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("CSV quoted field not closed before end of data in line %d", line)
	}
	if len(field) > 0 || len(row) > 0 || quoted {
		lastQuoted := quoted
		endField()
		endRow(lastQuoted)
	}
	return rows, nil
}

func trimSepHeaderLine(csv []byte, newline string) (rest []byte, sep string) {
	first, rest, found := bytes.Cut(csv, []byte(newline))
	if !found {
		return csv, ""
	}
	sep = parseSepHeaderLine(first)
	if sep == "" {
		return csv, ""
	}
	return rest, sep
}

func parseSepHeaderLine(line []byte) (sep string) {
	line = bytes.TrimSpace(line)
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	if utf8.RuneCount(line[4:]) != 1 {
		return ""
	}
	return string(line[4:])
}

func detectSeparator(csv []byte) string {
	var commas, semicolons, tabs int
	inQuotes := false
	for _, c := range csv {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case c == ',':
			commas++
		case c == ';':
			semicolons++
		case c == '\t':
			tabs++
		}
	}
	switch {
	case semicolons > commas && semicolons > tabs:
		return ";"
	case tabs > commas && tabs > semicolons:
		return "\t"
	default:
		return ","
	}
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}

// ErrNoHeaderRow is returned when a table has no header row.
var ErrNoHeaderRow = errors.New("CSV has no header row")
