package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"
)

// Writer writes rows of strings as delimiter-separated text.
//
// Writer is immutable, all With* methods return
// a modified copy of the Writer.
type Writer struct {
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        string
	newLine          string
}

// NewWriter returns a Writer using comma delimiters
// and \r\n line endings as specified by RFC 4180.
func NewWriter() *Writer {
	return &Writer{
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ",",
		newLine:          "\r\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteRows writes rows to dest.
// Fields containing the delimiter, a quote, or a newline are quoted.
// The context is checked for cancellation before every row.
func (w *Writer) WriteRows(ctx context.Context, dest io.Writer, rows [][]string) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.writeRow(rowBuf, row)
		_, err := dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

func (w *Writer) writeRow(rowBuf *bytes.Buffer, row []string) {
	for col, str := range row {
		if col > 0 {
			rowBuf.WriteString(w.delimiter)
		}
		// \n alone is valid within quotes
		str = strings.ReplaceAll(str, "\r", "")
		switch {
		case w.quoteAllFields || w.mustQuote(str):
			rowBuf.WriteByte('"')
			rowBuf.WriteString(strings.ReplaceAll(str, `"`, w.escapeQuotes))
			rowBuf.WriteByte('"')
		case w.quoteEmptyFields && str == "":
			rowBuf.WriteString(`""`)
		default:
			rowBuf.WriteString(str)
		}
	}
	rowBuf.WriteString(w.newLine)
}

func (w *Writer) mustQuote(str string) bool {
	return strings.ContainsAny(str, "\n\"") || strings.Contains(str, w.delimiter)
}

// WithQuoteAllFields returns a Writer that quotes every field.
func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

// WithQuoteEmptyFields returns a Writer that writes empty fields as "".
func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

// WithEscapeQuotes returns a Writer that replaces quotes
// within quoted fields with escapeQuotes.
func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter string) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) QuoteAllFields() bool   { return w.quoteAllFields }
func (w *Writer) QuoteEmptyFields() bool { return w.quoteEmptyFields }
func (w *Writer) EscapeQuotes() string   { return w.escapeQuotes }
func (w *Writer) Delimiter() string      { return w.delimiter }
func (w *Writer) NewLine() string        { return w.newLine }
