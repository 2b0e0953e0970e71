package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/security"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(security.SecurityHeadersMiddleware())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.Templates != nil {
		router.SetHTMLTemplate(cfg.Templates)
	}

	healthController := NewHealthController(cfg.Database, cfg.Catalog, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Book table and form
	ui := NewUIController(cfg.Renderer, cfg.Forms, logger)
	router.GET("/", ui.BooksPage)
	router.GET("/books", ui.TableBody)
	router.POST("/books", ui.SubmitBook)
	router.POST("/books/:position/toggle-read", ui.ToggleRead)
	router.POST("/books/:position/delete", ui.DeleteBook)
	router.DELETE("/books/:position", ui.DeleteBook)

	// JSON API
	api := router.Group("/api")
	{
		books := NewBooksController(cfg.Catalog)
		api.GET("/books", books.GetAllBooks)
		api.GET("/books/stats", books.GetBookStats)

		if cfg.Activity != nil {
			activity := NewActivityController(cfg.Activity, logger)
			api.GET("/activity", activity.GetActivity)
		}
	}

	return router
}
