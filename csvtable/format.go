// Package csvtable parses and writes delimiter-separated text tables.
//
// The parser is tolerant of the quoting found in real world CSV exports:
//   - Quoted fields with embedded separators, newlines, and doubled quotes
//   - Arbitrary, also multi-character, field separators
//   - "sep=X" header lines as written by spreadsheet applications
//   - Byte order marks and non UTF-8 encodings (decoded via go-types/charset)
//   - \n and \r\n line endings
package csvtable

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Format describes the encoding and structure of delimiter-separated text.
//
// Example:
//
//	format := &Format{
//	    Encoding:  "UTF-8",
//	    Separator: "\t",
//	    Newline:   "\n",
//	}
type Format struct {
	// Encoding of the raw bytes.
	// Common values: "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252", "Macintosh"
	Encoding string `json:"encoding"`

	// Separator between the fields of a line.
	// Any non-empty string is accepted, typically "," ";" or "\t".
	Separator string `json:"separator"`

	// Newline is the line ending sequence: "\n", "\r\n", or "\n\r"
	Newline string `json:"newline"`
}

// NewFormat returns a UTF-8 Format with the passed separator
// and \r\n line endings.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if the format can't be used for parsing.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (f *Format) String() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s separator %q newline %q", f.Encoding, f.Separator, f.Newline)
}

// DetectNewline returns "\r\n" if the text contains at least one
// \r\n sequence because that's the standard, else "\n".
func DetectNewline(text []byte) string {
	if bytes.Contains(text, []byte{'\r', '\n'}) {
		return "\r\n"
	}
	return "\n"
}

// FormatDetectionConfig configures DetectFormat and ParseDetectFormat.
type FormatDetectionConfig struct {
	// Encodings to test in priority order.
	Encodings []string `json:"encodings"`

	// EncodingTests are strings with characters that are encoded
	// differently across the tested encodings.
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// for European and Cyrillic text files.
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
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// EscapeQuotes doubles every double quote character of val.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
