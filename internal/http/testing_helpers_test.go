package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/table"
	"github.com/mrlokans/bookshelf/internal/templates"
)

func setupTestRouter(t *testing.T, seed bool) (*gin.Engine, *catalog.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := catalog.New()
	if seed {
		c.Seed(catalog.DefaultSeed)
	}

	tmpl := templates.Must(nil)
	renderer := table.NewRenderer(c, table.NewHTMLSurface(tmpl))

	router := NewRouter(RouterConfig{
		Renderer:  renderer,
		Forms:     form.NewController(renderer),
		Catalog:   c,
		Templates: tmpl,
		Version:   "test",
	})
	return router, c
}

func postForm(router http.Handler, path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	router.ServeHTTP(w, req)
	return w
}
