package csvviewer

import (
	"log/slog"

	"github.com/domonda/go-csvviewer/csvtable"
)

const (
	// MaxDisplayRows is the maximum number of rows
	// returned by TableModel.Parse.
	MaxDisplayRows = 1000

	// DefaultDelimiter is used when no delimiter is set.
	DefaultDelimiter = ","
)

// TableModel holds delimiter-separated text and its delimiter
// as observable state.
//
// Changes of the content or delimiter are announced via StateChanged,
// truncation of parsed rows to MaxDisplayRows via Overflow.
// All notifications are delivered synchronously.
//
// A TableModel is not safe for concurrent use.
type TableModel struct {
	content   string
	delimiter string

	stateChanged Signal[struct{}]
	overflow     Signal[OverflowNotice]

	logger   *slog.Logger
	disposed bool
}

// NewTableModel returns a TableModel with initial content and delimiter.
// An empty delimiter means DefaultDelimiter.
func NewTableModel(content, delimiter string) *TableModel {
	return &TableModel{
		content:   content,
		delimiter: delimiter,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger used by the model, nil means slog.Default().
func (m *TableModel) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	m.logger = logger
}

func (m *TableModel) log() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// Content returns the raw delimiter-separated text.
func (m *TableModel) Content() string {
	return m.content
}

// SetContent sets the raw text and emits StateChanged
// if it differs from the current content.
func (m *TableModel) SetContent(content string) {
	if content == m.content {
		return
	}
	m.content = content
	m.stateChanged.Emit(struct{}{})
}

// Delimiter returns the field delimiter,
// DefaultDelimiter if none was set.
func (m *TableModel) Delimiter() string {
	if m.delimiter == "" {
		return DefaultDelimiter
	}
	return m.delimiter
}

// SetDelimiter sets the field delimiter and emits StateChanged
// if it differs from the current delimiter.
// An empty delimiter resets to DefaultDelimiter.
// The delimiter is not validated.
func (m *TableModel) SetDelimiter(delimiter string) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	if delimiter == m.Delimiter() {
		return
	}
	m.delimiter = delimiter
	m.stateChanged.Emit(struct{}{})
}

// Parse parses the content using the delimiter.
//
// The first record provides the column names.
// If there are more than MaxDisplayRows data rows,
// only the first MaxDisplayRows are returned and an OverflowNotice
// is emitted via Overflow before Parse returns.
// Every call parses again, nothing is cached.
//
// Errors of the underlying parser are returned unchanged.
func (m *TableModel) Parse() (*ParsedTable, error) {
	records, err := csvtable.ParseString(m.content, m.Delimiter())
	if err != nil {
		return nil, err
	}
	table := NewParsedTable(records)
	if available := table.truncate(MaxDisplayRows); available > MaxDisplayRows {
		notice := OverflowNotice{Available: available, Maximum: MaxDisplayRows}
		m.log().Debug("parsed rows exceed display limit", "available", available, "maximum", MaxDisplayRows)
		m.overflow.Emit(notice)
	}
	return table, nil
}

// StateChanged returns the signal emitted after
// every change of the content or delimiter.
func (m *TableModel) StateChanged() *Signal[struct{}] {
	return &m.stateChanged
}

// Overflow returns the signal emitted by Parse
// when rows had to be dropped.
func (m *TableModel) Overflow() *Signal[OverflowNotice] {
	return &m.overflow
}

// Dispose releases all connections to the model's signals.
// Dispose is idempotent.
func (m *TableModel) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.stateChanged.Close()
	m.overflow.Close()
	m.log().Debug("table model disposed")
}

// IsDisposed returns true after Dispose has been called.
func (m *TableModel) IsDisposed() bool {
	return m.disposed
}
