// Package htmltable writes csvviewer Node trees as HTML.
//
// Render converts a Node tree with golang.org/x/net/html
// which escapes all text and attribute values.
// Component wraps a tree as templ.Component.
// Writer renders a csvviewer.TableView together with the
// overflow notice of its model, optionally as complete HTML document.
//
// Example usage:
//
//	model := csvviewer.NewTableModel(content, csvviewer.DelimiterForFileName(name))
//	defer model.Dispose()
//
//	err := htmltable.NewWriter().
//	    WithDocument(true).
//	    WithTitle(name).
//	    WriteView(ctx, os.Stdout, csvviewer.NewTableView(model))
package htmltable

import (
	"context"
	"html/template"
	"io"

	"github.com/domonda/go-csvviewer"
)

// DefaultNoticeClass is the CSS class of the overflow notice paragraph.
const DefaultNoticeClass = "csvviewer-notice"

// Writer writes a csvviewer.TableView as HTML.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	document       bool
	title          string
	noticeClass    string
	headerTemplate *template.Template
	noticeTemplate *template.Template
	footerTemplate *template.Template
}

// NewWriter creates a Writer that writes an HTML fragment
// with the overflow notice paragraph followed by the table.
func NewWriter() *Writer {
	return &Writer{
		document:       false,
		title:          "",
		noticeClass:    DefaultNoticeClass,
		headerTemplate: HeaderTemplate,
		noticeTemplate: NoticeTemplate,
		footerTemplate: FooterTemplate,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView renders view and writes it as HTML to dest.
//
// The overflow signal of the view's model is connected
// for the duration of the render. If the model emits
// an OverflowNotice, it is written as paragraph before the table.
//
// Returns csvviewer.ErrNoModel if no model is bound to view
// and parse errors of the model unchanged.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view *csvviewer.TableView) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	model := view.Model()
	if model == nil {
		return csvviewer.ErrNoModel
	}

	var notice *csvviewer.OverflowNotice
	conn := model.Overflow().Connect(func(n csvviewer.OverflowNotice) {
		notice = &n
	})
	node, err := view.Render()
	conn.Disconnect()
	if err != nil {
		return err
	}

	templData := TemplateContext{
		Title:       w.title,
		NoticeClass: w.noticeClass,
	}
	if notice != nil {
		templData.Notice = notice.String()
	}
	return w.write(dest, node, &templData)
}

// WriteNode writes node as HTML to dest
// using the document configuration of the Writer.
func (w *Writer) WriteNode(ctx context.Context, dest io.Writer, node *csvviewer.Node) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return w.write(dest, node, &TemplateContext{Title: w.title, NoticeClass: w.noticeClass})
}

func (w *Writer) write(dest io.Writer, node *csvviewer.Node, templData *TemplateContext) error {
	if w.document {
		err := w.headerTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
	}
	if templData.Notice != "" {
		err := w.noticeTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
	}
	err := Render(dest, node)
	if err != nil {
		return err
	}
	if w.document {
		return w.footerTemplate.Execute(dest, templData)
	}
	return nil
}

// WithDocument returns a new writer that wraps the table
// in a complete HTML document if document is true.
func (w *Writer) WithDocument(document bool) *Writer {
	mod := w.clone()
	mod.document = document
	return mod
}

// WithTitle returns a new writer using title as document title.
func (w *Writer) WithTitle(title string) *Writer {
	mod := w.clone()
	mod.title = title
	return mod
}

// WithNoticeClass returns a new writer using noticeClass
// as CSS class of the overflow notice paragraph.
func (w *Writer) WithNoticeClass(noticeClass string) *Writer {
	mod := w.clone()
	mod.noticeClass = noticeClass
	return mod
}

// WithTemplate returns a new writer with custom templates
// for the document header, the overflow notice, and the document footer.
// The templates are executed with a *TemplateContext.
func (w *Writer) WithTemplate(headerTemplate, noticeTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.noticeTemplate = noticeTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// Document returns if the writer writes complete HTML documents.
func (w *Writer) Document() bool {
	return w.document
}

// Title returns the document title.
func (w *Writer) Title() string {
	return w.title
}

// NoticeClass returns the CSS class of the overflow notice paragraph.
func (w *Writer) NoticeClass() string {
	return w.noticeClass
}
