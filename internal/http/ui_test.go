package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIController_BooksPage(t *testing.T) {
	router, _ := setupTestRouter(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<form class="book-form"`)
	assert.Contains(t, body, `name="haveRead"`)
	assert.Contains(t, body, "<td>Astro Boy</td>")
	assert.Contains(t, body, "<td>Game of Thrones</td>")
	assert.Equal(t, 2, strings.Count(body, "<tr data-book-index"))
	assert.NotContains(t, body, "hx-headers", "no token without CSRF middleware")
}

func TestUIController_TableBody(t *testing.T) {
	router, _ := setupTestRouter(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeHTML, w.Header().Get("Content-Type"))
	assert.NotContains(t, w.Body.String(), "<html")
	assert.Contains(t, w.Body.String(), `data-book-index="1"`)
}

func TestUIController_SubmitBook(t *testing.T) {
	valid := url.Values{
		"title":    {"Dune"},
		"author":   {"Frank Herbert"},
		"pages":    {"412"},
		"haveRead": {"true"},
	}

	t.Run("htmx submission appends and redraws", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := postForm(router, "/books", valid, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, FormResetEvent, w.Header().Get("HX-Trigger"))
		assert.Equal(t, 3, strings.Count(w.Body.String(), "<tr data-book-index"))
		assert.Contains(t, w.Body.String(), "<td>Dune</td>")

		require.Equal(t, 3, c.Len())
		book, err := c.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Frank Herbert", book.Author)
		assert.Equal(t, 412.0, book.PageCount)
		assert.True(t, book.HasBeenRead)
		assert.Equal(t, 2, book.Position)
	})

	t.Run("plain submission redirects to the page", func(t *testing.T) {
		router, c := setupTestRouter(t, false)

		w := postForm(router, "/books", valid, false)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("unchecked read box adds an unread book", func(t *testing.T) {
		router, c := setupTestRouter(t, false)

		values := url.Values{"title": {"Emma"}, "author": {"Jane Austen"}, "pages": {"474"}}
		w := postForm(router, "/books", values, true)

		assert.Equal(t, http.StatusOK, w.Code)
		book, err := c.Get(0)
		require.NoError(t, err)
		assert.False(t, book.HasBeenRead)
	})

	rejected := []struct {
		name   string
		values url.Values
	}{
		{"empty title", url.Values{"title": {""}, "author": {"A"}, "pages": {"1"}}},
		{"empty author", url.Values{"title": {"T"}, "author": {""}, "pages": {"1"}}},
		{"pages not a number", url.Values{"title": {"T"}, "author": {"A"}, "pages": {"many"}}},
		{"pages missing", url.Values{"title": {"T"}, "author": {"A"}}},
	}

	for _, tc := range rejected {
		t.Run("htmx rejects "+tc.name+" silently", func(t *testing.T) {
			router, c := setupTestRouter(t, true)

			w := postForm(router, "/books", tc.values, true)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Empty(t, w.Body.String())
			assert.Empty(t, w.Header().Get("HX-Trigger"))
			assert.Equal(t, 2, c.Len())
		})
	}

	t.Run("plain rejection keeps the entered values", func(t *testing.T) {
		router, c := setupTestRouter(t, false)

		values := url.Values{"title": {"Dune"}, "author": {"Frank Herbert"}, "pages": {"lots"}, "haveRead": {"true"}}
		w := postForm(router, "/books", values, false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, c.Len())
		body := w.Body.String()
		assert.Contains(t, body, `value="Dune"`)
		assert.Contains(t, body, `value="lots"`)
		assert.Contains(t, body, "checked")
	})
}

func TestUIController_ToggleRead(t *testing.T) {
	t.Run("toggles the clicked row", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := postForm(router, "/books/0/toggle-read", nil, true)

		assert.Equal(t, http.StatusOK, w.Code)
		book, err := c.Get(0)
		require.NoError(t, err)
		assert.True(t, book.HasBeenRead)
		assert.Contains(t, w.Body.String(), `class="haveReadButton" data-book-index="0"`)
	})

	t.Run("twice restores the flag", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		postForm(router, "/books/1/toggle-read", nil, true)
		postForm(router, "/books/1/toggle-read", nil, true)

		book, err := c.Get(1)
		require.NoError(t, err)
		assert.True(t, book.HasBeenRead)
	})

	t.Run("returns 404 for a stale position", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := postForm(router, "/books/5/toggle-read", nil, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "book not found")
		assert.Equal(t, 2, c.Len())
	})

	t.Run("returns 400 for a non-numeric position", func(t *testing.T) {
		router, _ := setupTestRouter(t, true)

		w := postForm(router, "/books/first/toggle-read", nil, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUIController_DeleteBook(t *testing.T) {
	t.Run("removes the row and renumbers the rest", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := postForm(router, "/books/0/delete", nil, true)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, c.Len())
		book, err := c.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "Game of Thrones", book.Title)
		assert.Equal(t, 0, book.Position)

		body := w.Body.String()
		assert.NotContains(t, body, "Astro Boy")
		assert.Contains(t, body, `hx-post="/books/0/delete"`)
		assert.NotContains(t, body, `data-book-index="1"`)
	})

	t.Run("DELETE method is routed too", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/books/1", nil)
		req.Header.Set("HX-Request", "true")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("plain post redirects", func(t *testing.T) {
		router, _ := setupTestRouter(t, true)

		w := postForm(router, "/books/1/delete", nil, false)

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("returns 404 on an empty catalog", func(t *testing.T) {
		router, _ := setupTestRouter(t, false)

		w := postForm(router, "/books/0/delete", nil, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative position is not found", func(t *testing.T) {
		router, c := setupTestRouter(t, true)

		w := postForm(router, "/books/-1/delete", nil, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 2, c.Len())
	})
}
