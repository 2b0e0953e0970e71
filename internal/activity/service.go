// Package activity records catalog mutations in the activity log.
package activity

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/bookshelf/internal/catalog"
	activityRepo "github.com/mrlokans/bookshelf/internal/database/activity"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var changeActions = map[catalog.ChangeKind]entities.ActivityAction{
	catalog.ChangeAdded:       entities.ActivityBookAdd,
	catalog.ChangeRemoved:     entities.ActivityBookRemove,
	catalog.ChangeReadToggled: entities.ActivityBookToggleRead,
}

// Service writes activity events in the background.
type Service struct {
	repo    *activityRepo.Repository
	surface entities.ActivitySurface
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewService creates a service tagging every event with surface.
func NewService(repo *activityRepo.Repository, surface entities.ActivitySurface, logger *slog.Logger) *Service {
	return &Service{repo: repo, surface: surface, logger: logger}
}

// BookChanged implements catalog.Observer.
func (s *Service) BookChanged(change catalog.Change) {
	action, ok := changeActions[change.Kind]
	if !ok {
		s.logger.Warn("Unknown catalog change", "kind", change.Kind)
		return
	}
	s.LogAsync(&entities.ActivityEvent{
		Action:      action,
		Title:       change.Book.Title,
		Author:      change.Book.Author,
		Position:    change.Book.Position,
		HasBeenRead: change.Book.HasBeenRead,
	})
}

// Log records an event synchronously.
func (s *Service) Log(event *entities.ActivityEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Surface == "" {
		event.Surface = s.surface
	}
	return s.repo.LogEvent(event)
}

// LogAsync records an event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.ActivityEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Log(event); err != nil {
			s.logger.Error("Failed to log activity event", "action", event.Action, "err", err)
		}
	}()
}

// Wait blocks until every pending LogAsync write has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// GetEvents retrieves paginated events, optionally filtered by action.
func (s *Service) GetEvents(action entities.ActivityAction, limit, offset int) ([]entities.ActivityEvent, int64, error) {
	return s.repo.GetEvents(action, limit, offset)
}

// DeleteOldEvents removes events older than the retention window.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}
