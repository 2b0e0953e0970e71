// Package templates embeds the HTML views of the catalog.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse loads every embedded view with the given template functions.
func Parse(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}

// Must is Parse for package-level and test setup.
func Must(funcs template.FuncMap) *template.Template {
	return template.Must(Parse(funcs))
}
