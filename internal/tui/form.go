package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mrlokans/bookshelf/internal/form"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldRead
	focusTable

	focusCount
)

// inputs adapts the text fields and the read flag to form.Form.
type inputs struct {
	fields   []textinput.Model
	haveRead bool
}

var _ form.Form = (*inputs)(nil)

func newInputs() *inputs {
	placeholders := []string{"Title", "Author", "Pages"}
	fields := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 24
		fields[i] = ti
	}
	fields[fieldPages].CharLimit = 9
	fields[fieldPages].Width = 6
	return &inputs{fields: fields}
}

func (in *inputs) Value(name string) string {
	switch name {
	case form.FieldTitle:
		return in.fields[fieldTitle].Value()
	case form.FieldAuthor:
		return in.fields[fieldAuthor].Value()
	case form.FieldPages:
		return in.fields[fieldPages].Value()
	case form.FieldHaveRead:
		if in.haveRead {
			return "true"
		}
	}
	return ""
}

func (in *inputs) Reset() {
	for i := range in.fields {
		in.fields[i].Reset()
	}
	in.haveRead = false
}

// focus moves the cursor to field; positions past the text fields blur all of them.
func (in *inputs) focus(field int) {
	for i := range in.fields {
		if i == field {
			in.fields[i].Focus()
		} else {
			in.fields[i].Blur()
		}
	}
}
