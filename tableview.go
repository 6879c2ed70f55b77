package csvviewer

import (
	"errors"
	"path/filepath"
	"strings"
)

// Class names of the rendered table elements.
const (
	TableClass     = "csvviewer-table"
	HeaderRowClass = "csvviewer-header"
	BodyClass      = "csvviewer-body"
)

// ErrNoModel is returned by TableView.Render
// when no TableModel is bound to the view.
var ErrNoModel = errors.New("no table model bound to view")

// TableView renders the parsed content of a TableModel as a table Node tree.
type TableView struct {
	model *TableModel
}

// NewTableView returns a TableView bound to model.
func NewTableView(model *TableModel) *TableView {
	return &TableView{model: model}
}

// Model returns the bound TableModel.
func (v *TableView) Model() *TableModel {
	return v.model
}

// SetModel binds model to the view.
func (v *TableView) SetModel(model *TableModel) {
	v.model = model
}

// Render parses the model and returns a table Node with
// a thead containing one header row with a th cell per column
// followed by a tbody with a tr per data row and a td cell per column.
//
//	<table class="csvviewer-table">
//	  <thead><tr class="csvviewer-header"><th>a</th><th>b</th></tr></thead>
//	  <tbody class="csvviewer-body"><tr><td>1</td><td>2</td></tr></tbody>
//	</table>
//
// The result only depends on the model's current state.
// Parse errors are returned unchanged.
func (v *TableView) Render() (*Node, error) {
	if v.model == nil {
		return nil, ErrNoModel
	}
	parsed, err := v.model.Parse()
	if err != nil {
		return nil, err
	}
	return RenderTable(parsed), nil
}

// RenderTable returns the table Node for parsed
// as described at TableView.Render.
func RenderTable(parsed *ParsedTable) *Node {
	columns := parsed.Columns()

	headerRow := Element("tr", []Attr{{Key: "class", Val: HeaderRowClass}})
	for _, col := range columns {
		headerRow.AppendChild(Element("th", nil, TextNode(col)))
	}

	body := Element("tbody", []Attr{{Key: "class", Val: BodyClass}})
	for _, row := range parsed.Rows() {
		tr := Element("tr", nil)
		for _, col := range columns {
			tr.AppendChild(Element("td", nil, TextNode(row[col])))
		}
		body.AppendChild(tr)
	}

	return Element("table", []Attr{{Key: "class", Val: TableClass}},
		Element("thead", nil, headerRow),
		body,
	)
}

// Dispose disposes the bound model.
func (v *TableView) Dispose() {
	if v.model != nil {
		v.model.Dispose()
	}
}

// DelimiterForFileName returns a tab for files
// with the extension .tsv or .tab, else DefaultDelimiter.
func DelimiterForFileName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsv", ".tab":
		return "\t"
	default:
		return DefaultDelimiter
	}
}
