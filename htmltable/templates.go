package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse("" +
		"<!DOCTYPE html>\n" +
		"<html>\n" +
		"<head>\n" +
		"  <meta charset=\"utf-8\">\n" +
		"{{if .Title}}  <title>{{.Title}}</title>\n{{end}}" +
		"</head>\n" +
		"<body>\n",
	))

	NoticeTemplate = template.Must(template.New("notice").Parse(
		"<p class='{{.NoticeClass}}'>{{.Notice}}</p>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"\n</body>\n</html>\n",
	))
)

type TemplateContext struct {
	Title       string
	NoticeClass string
	Notice      string
}
