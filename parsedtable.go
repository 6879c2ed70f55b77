package csvviewer

import (
	"fmt"
)

// View is a read-only table of cells with column titles.
type View interface {
	// Columns returns the column titles.
	Columns() []string

	// NumRows returns the number of data rows.
	NumRows() int

	// Cell returns the value at row and col
	// or nil if row or col are out of bounds.
	Cell(row, col int) any
}

// Row maps column names to cell text.
type Row map[string]string

// ParsedTable is the result of TableModel.Parse.
//
// The columns are the fields of the first record in source order,
// the rows hold the following records keyed by column name.
// Fields missing at the end of a record are mapped to empty strings,
// fields beyond the number of columns are dropped.
// For duplicate column names the last field wins.
type ParsedTable struct {
	columns []string
	rows    []Row
}

var _ View = new(ParsedTable)

// NewParsedTable returns a ParsedTable using the first
// of the passed records as column names.
func NewParsedTable(records [][]string) *ParsedTable {
	table := &ParsedTable{
		columns: []string{},
		rows:    []Row{},
	}
	if len(records) == 0 {
		return table
	}
	table.columns = records[0]
	table.rows = make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(table.columns))
		for i, col := range table.columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		table.rows = append(table.rows, row)
	}
	return table
}

// Columns returns the column names in source order.
func (t *ParsedTable) Columns() []string { return t.columns }

// Rows returns the data rows.
func (t *ParsedTable) Rows() []Row { return t.rows }

// NumRows returns the number of data rows.
func (t *ParsedTable) NumRows() int { return len(t.rows) }

// Cell implements View by returning the string value
// of the row for the column name at col.
// Returns nil if row or col are out of bounds.
func (t *ParsedTable) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(t.rows) || col >= len(t.columns) {
		return nil
	}
	return t.rows[row][t.columns[col]]
}

// Records returns the table as rows of strings
// with the column names as first row.
func (t *ParsedTable) Records() [][]string {
	return ViewStrings(t, true)
}

// truncate drops all rows after the first limit rows
// and returns the number of rows before truncation.
func (t *ParsedTable) truncate(limit int) (available int) {
	available = len(t.rows)
	if available > limit {
		clear(t.rows[limit:])
		t.rows = t.rows[:limit]
	}
	return available
}

// ViewStrings returns the cells of view formatted with fmt.Sprint.
// Nil cells are returned as empty strings.
// If addHeaderRow is true, the column titles are returned as first row.
func ViewStrings(view View, addHeaderRow bool) (rows [][]string) {
	columns := view.Columns()
	if addHeaderRow {
		rows = append(rows, append([]string(nil), columns...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, len(columns))
		for col := range columns {
			if val := view.Cell(row, col); val != nil {
				rowStrs[col] = fmt.Sprint(val)
			}
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// OverflowNotice is emitted by TableModel.Parse
// when rows had to be dropped to respect the display limit.
type OverflowNotice struct {
	// Available is the number of rows before truncation.
	Available int `json:"available"`
	// Maximum is the display limit.
	Maximum int `json:"maximum"`
}

// String implements the fmt.Stringer interface.
func (n OverflowNotice) String() string {
	return fmt.Sprintf("Table is too long to render, rendering %d of %d rows", n.Maximum, n.Available)
}
