package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ActivityReader provides paginated access to the activity log.
type ActivityReader interface {
	GetEvents(action entities.ActivityAction, limit, offset int) ([]entities.ActivityEvent, int64, error)
}

type ActivityController struct {
	reader ActivityReader
	logger *slog.Logger
}

func NewActivityController(reader ActivityReader, logger *slog.Logger) *ActivityController {
	return &ActivityController{reader: reader, logger: logger}
}

// GetActivity returns paginated activity events as JSON
// GET /api/activity
func (ac *ActivityController) GetActivity(c *gin.Context) {
	page, limit := parsePagination(c, 25, 100)
	action := entities.ActivityAction(c.Query("action"))
	offset := (page - 1) * limit

	events, total, err := ac.reader.GetEvents(action, limit, offset)
	if err != nil {
		respondInternalError(c, ac.logger, err, "load activity events")
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"page":         page,
		"limit":        limit,
		"total_pages":  totalPages,
		"total_events": total,
	})
}
