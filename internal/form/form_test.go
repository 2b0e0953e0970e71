package form

import (
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/table"
)

type countingSurface struct {
	draws int
}

func (s *countingSurface) Draw(w io.Writer, rows []table.Row) error {
	s.draws++
	return nil
}

func setup(t *testing.T) (*Controller, *catalog.Catalog, *countingSurface) {
	t.Helper()
	c := catalog.New()
	c.Seed(catalog.DefaultSeed)
	surface := &countingSurface{}
	return NewController(table.NewRenderer(c, surface)), c, surface
}

func values(title, author, pages, haveRead string) *Values {
	v := url.Values{}
	v.Set(FieldTitle, title)
	v.Set(FieldAuthor, author)
	v.Set(FieldPages, pages)
	if haveRead != "" {
		v.Set(FieldHaveRead, haveRead)
	}
	return &Values{Values: v}
}

func TestController_Submit(t *testing.T) {
	t.Run("valid submission adds, redraws and resets", func(t *testing.T) {
		fc, c, surface := setup(t)
		before := c.Len()
		resets := 0
		f := values("Dune", "Frank Herbert", "412", "true")
		f.OnReset = func() { resets++ }

		added, err := fc.Submit(io.Discard, f)
		require.NoError(t, err)

		assert.Equal(t, before+1, c.Len())
		want := entities.BookRecord{
			Title:       "Dune",
			Author:      "Frank Herbert",
			PageCount:   412,
			HasBeenRead: true,
			Position:    c.Len() - 1,
		}
		assert.Equal(t, want, added)
		last, err := c.Get(c.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, want, last)

		assert.Equal(t, 1, surface.draws)
		assert.Equal(t, 1, resets)
		assert.Empty(t, f.Values)
	})

	t.Run("missing haveRead means unread", func(t *testing.T) {
		fc, _, _ := setup(t)
		added, err := fc.Submit(io.Discard, values("Dune", "Frank Herbert", "412", ""))
		require.NoError(t, err)
		assert.False(t, added.HasBeenRead)
	})

	t.Run("any haveRead other than true means unread", func(t *testing.T) {
		fc, _, _ := setup(t)
		added, err := fc.Submit(io.Discard, values("Dune", "Frank Herbert", "412", "on"))
		require.NoError(t, err)
		assert.False(t, added.HasBeenRead)
	})

	accepted := []struct {
		pages string
		want  float64
	}{
		{" 412 ", 412},
		{"41.2", 41.2},
		{"1e3", 1000},
		{"0x10", 16},
		{"0b11", 3},
		{"-5", -5},
	}
	for _, tc := range accepted {
		t.Run("pages "+strings.TrimSpace(tc.pages)+" is a number", func(t *testing.T) {
			fc, _, _ := setup(t)
			added, err := fc.Submit(io.Discard, values("Dune", "Frank Herbert", tc.pages, ""))
			require.NoError(t, err)
			assert.Equal(t, tc.want, added.PageCount)
		})
	}

	rejected := []struct {
		name   string
		form   *Values
		field  string
		reason string
	}{
		{"empty title", values("", "Frank Herbert", "412", "true"), FieldTitle, ReasonEmpty},
		{"empty author", values("Dune", "", "412", "true"), FieldAuthor, ReasonEmpty},
		{"non numeric pages", values("Dune", "Frank Herbert", "abc", "true"), FieldPages, ReasonNotNumber},
		{"empty pages", values("Dune", "Frank Herbert", "", "true"), FieldPages, ReasonNotNumber},
		{"whitespace pages", values("Dune", "Frank Herbert", "   ", "true"), FieldPages, ReasonNotNumber},
		{"NaN pages", values("Dune", "Frank Herbert", "NaN", "true"), FieldPages, ReasonNotNumber},
		{"infinite pages", values("Dune", "Frank Herbert", "Inf", "true"), FieldPages, ReasonNotNumber},
		{"overflowing pages", values("Dune", "Frank Herbert", "1e400", "true"), FieldPages, ReasonNotNumber},
	}
	for _, tc := range rejected {
		t.Run(tc.name+" is rejected silently", func(t *testing.T) {
			fc, c, surface := setup(t)
			before := c.Books()
			resets := 0
			tc.form.OnReset = func() { resets++ }

			_, err := fc.Submit(io.Discard, tc.form)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, tc.reason, validationErr.Reason)
			assert.True(t, strings.Contains(err.Error(), tc.field))

			assert.Equal(t, before, c.Books())
			assert.Zero(t, surface.draws)
			assert.Zero(t, resets)
			assert.NotEmpty(t, tc.form.Values)
		})
	}
}

func TestParse(t *testing.T) {
	record, err := Parse(values("Dune", "Frank Herbert", "412", "true"))
	require.NoError(t, err)
	assert.Equal(t, -1, record.Position)
	assert.Equal(t, 412.0, record.PageCount)
}
