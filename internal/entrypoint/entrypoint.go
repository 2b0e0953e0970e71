package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/activity"
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	activityRepo "github.com/mrlokans/bookshelf/internal/database/activity"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/form"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/security"
	"github.com/mrlokans/bookshelf/internal/table"
	"github.com/mrlokans/bookshelf/internal/templates"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// NewCatalog creates the catalog, seeded with the sample books when enabled.
func NewCatalog(cfg *config.Config) *catalog.Catalog {
	c := catalog.New()
	if cfg.Seed.Enabled {
		c.Seed(catalog.DefaultSeed)
	}
	return c
}

// ActivityLog bundles the activity database with its writer and pruner.
type ActivityLog struct {
	Database  *database.Database
	Service   *activity.Service
	Scheduler *scheduler.ActivityCleanupScheduler

	logger *slog.Logger
}

// OpenActivityLog opens the activity database and starts the cleanup
// schedule. It returns nil, nil when the activity log is disabled.
func OpenActivityLog(ctx context.Context, cfg *config.Config, surface entities.ActivitySurface, logger *slog.Logger) (*ActivityLog, error) {
	if !cfg.Activity.Enabled {
		logger.Info("Activity log disabled")
		return nil, nil
	}

	if err := scheduler.ValidateSchedule(cfg.Activity.CleanupSchedule); err != nil {
		return nil, fmt.Errorf("invalid activity cleanup schedule %q: %w", cfg.Activity.CleanupSchedule, err)
	}

	db, err := database.NewDatabase(cfg.Activity.DatabasePath, logger)
	if err != nil {
		return nil, err
	}

	service := activity.NewService(activityRepo.NewRepository(db.DB), surface, logger)
	cleanup := scheduler.NewActivityCleanupScheduler(service, cfg.Activity.CleanupSchedule, cfg.Activity.RetentionDays, logger)
	if err := cleanup.Start(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to start activity cleanup: %w", err)
	}

	return &ActivityLog{Database: db, Service: service, Scheduler: cleanup, logger: logger}, nil
}

// Attach makes the activity log observe c. Call it after seeding so the
// sample books are not recorded.
func (a *ActivityLog) Attach(c *catalog.Catalog) {
	c.SetObserver(a.Service)
}

// Close stops the scheduler, flushes pending writes and closes the database.
func (a *ActivityLog) Close() {
	a.Scheduler.Stop()
	a.Service.Wait()
	if err := a.Database.Close(); err != nil {
		a.logger.Error("Error closing activity database", "err", err)
	}
}

// NewRouter wires the catalog, the HTML table and the form controller into
// the HTTP router.
func NewRouter(cfg *config.Config, c *catalog.Catalog, log *ActivityLog, version string, logger *slog.Logger) (*gin.Engine, error) {
	tmpl, err := templates.Parse(template.FuncMap{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	renderer := table.NewRenderer(c, table.NewHTMLSurface(tmpl))

	routerCfg := http_controllers.RouterConfig{
		Renderer:      renderer,
		Forms:         form.NewController(renderer),
		Catalog:       c,
		Templates:     tmpl,
		SecureCookies: cfg.Security.SecureCookies,
		Version:       version,
		Logger:        logger,
	}

	// Left unset when disabled so the interfaces stay nil.
	if log != nil {
		routerCfg.Activity = log.Service
		routerCfg.Database = log.Database
	}

	if cfg.Security.CSRFEnabled {
		secret, err := security.DecodeSecret(cfg.Security.CSRFSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare CSRF secret: %w", err)
		}
		routerCfg.CSRFSecret = secret
	} else {
		logger.Warn("CSRF protection disabled")
	}

	return http_controllers.NewRouter(routerCfg), nil
}

// Serve runs the server until ctx is cancelled, then shuts it down within
// the configured timeout.
func Serve(ctx context.Context, router http.Handler, cfg *config.Config, logger *slog.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server exiting")
	return nil
}

// Run serves the web surface until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, version string, logger *slog.Logger) error {
	logger.Info("Starting bookshelf", "version", version)

	gin.SetMode(gin.ReleaseMode)

	c := NewCatalog(cfg)

	activityLog, err := OpenActivityLog(ctx, cfg, entities.SurfaceWeb, logger)
	if err != nil {
		return err
	}
	if activityLog != nil {
		activityLog.Attach(c)
		defer activityLog.Close()
	}

	router, err := NewRouter(cfg, c, activityLog, version, logger)
	if err != nil {
		return err
	}

	return Serve(ctx, router, cfg, logger, nil)
}
