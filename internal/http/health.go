package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}

// Counter reports the catalog size.
type Counter interface {
	Len() int
}

type HealthController struct {
	db      Pinger
	catalog Counter
	version string
}

// NewHealthController creates the controller. db may be nil when the
// activity log is disabled.
func NewHealthController(db Pinger, catalog Counter, version string) *HealthController {
	return &HealthController{
		db:      db,
		catalog: catalog,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["activity_database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["activity_database"] = "ok"
		}
	} else {
		checks["activity_database"] = "disabled"
	}

	if h.catalog != nil {
		checks["catalog"] = strconv.Itoa(h.catalog.Len()) + " books"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
