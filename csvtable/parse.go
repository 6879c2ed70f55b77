package csvtable

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// ParseString parses UTF-8 text with fields separated by separator.
// Lines may end with \n or \r\n, also mixed within the text.
// The text is not modified apart from the quoting,
// rows without any non-empty field are removed from the result.
//
// Example:
//
//	rows, err := ParseString("a,b\n1,2\n3,4", ",")
//	// rows == [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
func ParseString(text, separator string) (rows [][]string, err error) {
	csv := []byte(strings.ReplaceAll(text, "\r\n", "\n"))
	format := &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\n",
	}
	rows, err = ParseWithFormat(csv, format)
	if err != nil {
		return nil, err
	}
	return RemoveEmptyRows(rows), nil
}

// ParseWithFormat parses csv using an explicitly specified format.
//
// UTF-8 data is only stripped of a byte order mark.
// Data in other encodings is decoded to UTF-8 and replacement
// characters and no-break spaces of the decoded text become spaces.
// A "sep=X" header line is checked against format.Separator and removed.
//
// Lines that are empty or that were joined into a multi-line field
// of a preceding line are returned as nil rows so that row indices
// match line indices. Use RemoveEmptyRows to drop them.
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
		csv = sanitizeUTF8(csv)
	}

	lines := bytes.Split(csv, []byte(format.Newline))
	if len(lines) > 0 {
		if headerSep := parseSepHeaderLine(lines[0]); headerSep != "" {
			if headerSep != format.Separator {
				return nil, fmt.Errorf("separator %q in header line is different from format separator %q", headerSep, format.Separator)
			}
			lines = lines[1:]
		}
	}

	return readLines(lines, []byte(format.Separator), "\n")
}

// ParseDetectFormat detects the format of csv with DetectFormat
// and parses it. A nil config means NewDefaultFormatDetectionConfig().
func ParseDetectFormat(csv []byte, config *FormatDetectionConfig) (rows [][]string, format *Format, err error) {
	format, lines, err := detectFormatAndSplitLines(csv, config)
	if err != nil {
		return nil, format, err
	}
	rows, err = readLines(lines, []byte(format.Separator), "\n")
	return rows, format, err
}

// DetectFormat detects encoding, line ending, and separator of csv.
// A nil config means NewDefaultFormatDetectionConfig().
//
// The separator is taken from a "sep=X" header line if present,
// else the most frequent of comma, semicolon, and tab is used
// with comma winning ties.
func DetectFormat(csv []byte, config *FormatDetectionConfig) (*Format, error) {
	format, _, err := detectFormatAndSplitLines(csv, config)
	return format, err
}

// RemoveEmptyRows returns rows without the rows
// that have no fields or only empty fields.
// The passed slice is modified in place.
func RemoveEmptyRows(rows [][]string) [][]string {
	result := rows[:0]
	for _, row := range rows {
		if !isEmptyRow(row) {
			result = append(result, row)
		}
	}
	return result
}

func isEmptyRow(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}

func detectFormatAndSplitLines(csv []byte, config *FormatDetectionConfig) (format *Format, lines [][]byte, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}

	format = new(Format)

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}
	csv, format.Encoding, err = charset.AutoDecode(csv, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	if format.Encoding != "UTF-8" {
		csv = sanitizeUTF8(csv)
	}

	format.Newline = DetectNewline(csv)

	// Split at \n and trim \r to handle mixed line endings
	lines = bytes.Split(csv, []byte{'\n'})
	for i := range lines {
		lines[i] = bytes.TrimSuffix(lines[i], []byte{'\r'})
	}
	if len(lines) > 0 {
		format.Separator = parseSepHeaderLine(lines[0])
		if format.Separator != "" {
			return format, lines[1:], nil
		}
	}

	var commas, semicolons, tabs int
	for i := range lines {
		commas += bytes.Count(lines[i], []byte{','})
		semicolons += bytes.Count(lines[i], []byte{';'})
		tabs += bytes.Count(lines[i], []byte{'\t'})
	}
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}
	return format, lines, nil
}

// parseSepHeaderLine returns X for a line "sep=X" or "SEP=X",
// optionally enclosed in double quotes, else an empty string.
func parseSepHeaderLine(line []byte) (sep string) {
	if len(line) < 5 {
		return ""
	}
	if line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}

// readLines splits lines into fields separated by separator.
//
// A field beginning with a double quote ends at the next quote
// that is not doubled. Separators and line breaks within the quotes
// belong to the field and doubled quotes are unescaped.
// Text between the closing quote and the next separator is appended
// as is, quotes within unquoted fields are kept.
// A record continuing over multiple lines is returned at the index
// of its first line with the line breaks replaced by newlineReplacement,
// the continuation lines are left as nil rows.
func readLines(lines [][]byte, separator []byte, newlineReplacement string) (rows [][]string, err error) {
	rows = make([][]string, len(lines))
	for lineIndex := 0; lineIndex < len(lines); lineIndex++ {
		line := lines[lineIndex]
		if len(line) == 0 {
			continue
		}

		var (
			recordIndex = lineIndex
			row         []string
			field       []byte
			pos         int
		)
		for {
			if pos < len(line) && line[pos] == '"' {
				fieldLineIndex := lineIndex
				pos++
			quoted:
				for {
					if pos == len(line) {
						lineIndex++
						if lineIndex == len(lines) {
							return nil, fmt.Errorf("can't handle quoting of CSV field starting in line %d: missing closing quote", fieldLineIndex+1)
						}
						field = append(field, newlineReplacement...)
						line = lines[lineIndex]
						pos = 0
						continue
					}
					c := line[pos]
					pos++
					switch {
					case c != '"':
						field = append(field, c)
					case pos < len(line) && line[pos] == '"':
						field = append(field, '"')
						pos++
					default:
						break quoted
					}
				}
			}

			end := bytes.Index(line[pos:], separator)
			if end < 0 {
				field = append(field, line[pos:]...)
				row = append(row, string(field))
				break
			}
			field = append(field, line[pos:pos+end]...)
			row = append(row, string(field))
			field = field[:0]
			pos += end + len(separator)
		}
		rows[recordIndex] = row
	}

	return rows, nil
}

// sanitizeUTF8 replaces the unicode replacement character
// and no-break spaces with regular spaces.
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
