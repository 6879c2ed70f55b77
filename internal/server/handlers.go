package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/domonda/go-csvviewer"
	"github.com/domonda/go-csvviewer/htmltable"
	"github.com/domonda/go-csvviewer/internal/logging"
	"github.com/domonda/go-csvviewer/internal/tablefile"
)

// OverflowHeader is set on table responses that were truncated
// to csvviewer.MaxDisplayRows rows.
const OverflowHeader = "X-Csvview-Overflow"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	if err != nil {
		logging.FromContext(r.Context()).Error("writing health response",
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}
}

// handleIndex responds with a list of links
// to the views of all table files.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := tablefile.List(r.Context(), s.root)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	list := csvviewer.Element("ul", nil)
	for _, name := range names {
		link := csvviewer.Element("a",
			[]csvviewer.Attr{{Key: "href", Val: "/view/" + url.PathEscape(name)}},
			csvviewer.TextNode(name),
		)
		list.AppendChild(csvviewer.Element("li", nil, link))
	}

	var buf bytes.Buffer
	err = htmltable.NewWriter().
		WithDocument(true).
		WithTitle("Tables").
		WriteNode(r.Context(), &buf, list)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleView responds with a complete HTML document
// showing the overflow notice and the table.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	name, model, err := s.loadModel(r)
	if err != nil {
		s.respondError(w, r, err, statusForLoadError(err))
		return
	}
	view := csvviewer.NewTableView(model)
	defer view.Dispose()

	var buf bytes.Buffer
	err = htmltable.NewWriter().
		WithDocument(true).
		WithTitle(name).
		WriteView(r.Context(), &buf, view)
	if err != nil {
		s.respondError(w, r, err, statusForRenderError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleTable responds with the bare table fragment.
// Truncation is reported with the OverflowHeader.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	_, model, err := s.loadModel(r)
	if err != nil {
		s.respondError(w, r, err, statusForLoadError(err))
		return
	}
	view := csvviewer.NewTableView(model)
	defer view.Dispose()

	conn := model.Overflow().Connect(func(notice csvviewer.OverflowNotice) {
		w.Header().Set(OverflowHeader, notice.String())
	})
	node, err := view.Render()
	conn.Disconnect()
	if err != nil {
		s.respondError(w, r, err, statusForRenderError(err))
		return
	}

	templ.Handler(htmltable.Component(node)).ServeHTTP(w, r)
}

// loadModel resolves the file named by the request path within the
// server root and loads it into a new model owned by the caller.
func (s *Server) loadModel(r *http.Request) (name string, model *csvviewer.TableModel, err error) {
	name, err = url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		return "", nil, errors.Join(tablefile.ErrInvalidName, err)
	}
	file, err := tablefile.Resolve(s.root, name)
	if err != nil {
		return "", nil, err
	}

	query := r.URL.Query()
	opts := tablefile.Options{
		Delimiter: query.Get("delimiter"),
		Detect:    query.Get("detect") == "true",
	}
	if opts.Delimiter == "tab" {
		opts.Delimiter = "\t"
	}
	model, err = tablefile.Load(r.Context(), file, opts)
	if err != nil {
		return "", nil, err
	}

	log := logging.FromContext(r.Context()).With("file", name)
	model.SetLogger(log)
	model.Overflow().Connect(func(notice csvviewer.OverflowNotice) {
		log.Warn("table truncated", "available", notice.Available, "maximum", notice.Maximum)
	})
	return name, model, nil
}

func statusForLoadError(err error) int {
	switch {
	case errors.Is(err, tablefile.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, tablefile.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func statusForRenderError(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, csvviewer.ErrNoModel):
		return http.StatusInternalServerError
	default:
		// Everything else is a parse error of the file content
		return http.StatusUnprocessableEntity
	}
}

// respondError logs the technical error with the request ID
// and responds with the status text and error message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
	)
	http.Error(w, http.StatusText(statusCode)+": "+err.Error(), statusCode)
}
