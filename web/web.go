// Package web holds the embedded HTML templates for the search pages.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

const dateLayout = "Monday, January 2, 2006"

// FuncMap is the set of functions available to the templates.
var FuncMap = template.FuncMap{
	"iso8601": FormatISO8601,
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.New("").Option("missingkey=zero").Funcs(FuncMap).ParseFS(files, "templates/*.html")
}

// FormatISO8601 renders a date such as 2019-05-10T03:12:45Z for display.
// Values that do not parse are returned unchanged.
func FormatISO8601(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout)
}
