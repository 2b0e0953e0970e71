// Package form turns submitted book fields into catalog records.
package form

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/table"
)

// Submitted field names.
const (
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldPages    = "pages"
	FieldHaveRead = "haveRead"
)

const (
	ReasonEmpty     = "empty"
	ReasonNotNumber = "not a number"
)

// ValidationError names the first field that rejected a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Form is the surface-side view of the book form.
type Form interface {
	Value(name string) string
	Reset()
}

// Controller validates submissions and hands valid records to the renderer.
type Controller struct {
	renderer *table.Renderer
}

func NewController(renderer *table.Renderer) *Controller {
	return &Controller{renderer: renderer}
}

// Submit reads the form, and on success adds the record, redraws the table
// onto w and resets the form. On failure nothing is added, drawn or reset
// and a *ValidationError is returned.
func (fc *Controller) Submit(w io.Writer, f Form) (entities.BookRecord, error) {
	record, err := Parse(f)
	if err != nil {
		return entities.BookRecord{}, err
	}

	var added entities.BookRecord
	err = fc.renderer.Apply(w, func(c *catalog.Catalog) error {
		added = c.Add(record)
		return nil
	})
	if err != nil {
		return added, err
	}

	f.Reset()
	return added, nil
}

// Parse validates the submitted fields and builds an unplaced record.
func Parse(f Form) (entities.BookRecord, error) {
	title := f.Value(FieldTitle)
	author := f.Value(FieldAuthor)
	pages := f.Value(FieldPages)
	haveRead := f.Value(FieldHaveRead) == "true"

	if title == "" {
		return entities.BookRecord{}, &ValidationError{Field: FieldTitle, Reason: ReasonEmpty}
	}
	if author == "" {
		return entities.BookRecord{}, &ValidationError{Field: FieldAuthor, Reason: ReasonEmpty}
	}
	pageCount, ok := parsePageCount(pages)
	if !ok {
		return entities.BookRecord{}, &ValidationError{Field: FieldPages, Reason: ReasonNotNumber}
	}

	return entities.NewBookRecord(title, author, pageCount, haveRead), nil
}

// parsePageCount accepts anything that reads as a finite number: decimals,
// exponents and 0x/0o/0b integers. Empty input, NaN and infinities are not
// numbers.
func parsePageCount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		i, intErr := strconv.ParseInt(s, 0, 64)
		if intErr != nil {
			return 0, false
		}
		n = float64(i)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
