// Package csvviewer renders delimiter-separated text as a table.
//
// A TableModel holds the raw text and the delimiter and parses them
// on demand into a ParsedTable capped at MaxDisplayRows rows.
// A TableView turns the parsed table into a renderer independent
// Node tree that backends like the htmltable package can paint.
//
// Example usage:
//
//	model := csvviewer.NewTableModel("a,b\n1,2\n3,4", ",")
//	defer model.Dispose()
//
//	model.Overflow().Connect(func(notice csvviewer.OverflowNotice) {
//	    log.Println(notice)
//	})
//
//	view := csvviewer.NewTableView(model)
//	node, err := view.Render()
package csvviewer
