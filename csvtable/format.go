package csvtable

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Format of CSV data.
type Format struct {
	// Encoding is the character encoding name
	// as understood by github.com/domonda/go-types/charset.
	Encoding string `json:"encoding"`
	// Separator is the single character field separator.
	Separator string `json:"separator"`
	// Newline is the line ending, one of "\n", "\r\n", or "\n\r".
	Newline string `json:"newline"`
}

// NewFormat returns a UTF-8 Format with "\r\n" line endings
// and the passed separator.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if the format is nil or incomplete.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case utf8.RuneCountInString(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// FormatDetectionConfig configures ParseDetectFormat.
type FormatDetectionConfig struct {
	// Encodings are tried in order to decode the data.
	Encodings []string `json:"encodings"`
	// EncodingTests are strings with special characters that
	// a correctly decoded text is expected to contain.
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// for common western and cyrillic encodings.
func NewDefaultFormatDetectionConfig() *FormatDetectionConfig {
	return &FormatDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"á", "é", "í", "ó", "ú", "ñ", "Ñ", "ç",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}
