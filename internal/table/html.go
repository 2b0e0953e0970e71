package table

import (
	"fmt"
	"html/template"
	"io"
)

// TableBodyTemplate is the template that renders the rows of the book table.
const TableBodyTemplate = "book-table-body"

// HTMLSurface renders rows through an html/template definition.
type HTMLSurface struct {
	tmpl *template.Template
	name string
}

func NewHTMLSurface(tmpl *template.Template) *HTMLSurface {
	return &HTMLSurface{tmpl: tmpl, name: TableBodyTemplate}
}

func (s *HTMLSurface) Draw(w io.Writer, rows []Row) error {
	if err := s.tmpl.ExecuteTemplate(w, s.name, rows); err != nil {
		return fmt.Errorf("render %s: %w", s.name, err)
	}
	return nil
}
