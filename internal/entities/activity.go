package entities

import "time"

type ActivityAction string

const (
	ActivityBookAdd        ActivityAction = "book_add"
	ActivityBookRemove     ActivityAction = "book_remove"
	ActivityBookToggleRead ActivityAction = "book_toggle_read"
)

type ActivitySurface string

const (
	SurfaceWeb      ActivitySurface = "web"
	SurfaceTerminal ActivitySurface = "tui"
)

// ActivityEvent records one catalog mutation. It describes what happened to
// the catalog; it is never replayed to rebuild it.
type ActivityEvent struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EventID     string          `gorm:"index;size:36" json:"event_id"`
	Action      ActivityAction  `gorm:"index;size:50" json:"action"`
	Surface     ActivitySurface `gorm:"size:10" json:"surface"`
	Title       string          `gorm:"size:512" json:"title"`
	Author      string          `gorm:"size:256" json:"author"`
	Position    int             `json:"position"`
	HasBeenRead bool            `json:"has_been_read"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
