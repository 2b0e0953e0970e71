package http

import (
	"html/template"
	"log/slog"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/table"
)

// RouterConfig holds all dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Core
	Renderer  *table.Renderer
	Forms     *form.Controller
	Catalog   *catalog.Catalog
	Templates *template.Template

	// Optional: nil disables /api/activity and the database health check
	Activity ActivityReader
	Database Pinger

	// Security; an empty secret disables CSRF protection
	CSRFSecret    []byte
	SecureCookies bool

	Version string
	Logger  *slog.Logger
}
