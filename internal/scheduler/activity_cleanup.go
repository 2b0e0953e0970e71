package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ActivityPruner deletes activity events older than a retention window.
type ActivityPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// ActivityCleanupScheduler prunes the activity log on a cron schedule.
type ActivityCleanupScheduler struct {
	pruner        ActivityPruner
	schedule      string
	retentionDays int
	logger        *slog.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool

	stop        chan struct{}
	watcherDone chan struct{}
}

// NewActivityCleanupScheduler creates a scheduler; retentionDays <= 0 means 30.
func NewActivityCleanupScheduler(pruner ActivityPruner, schedule string, retentionDays int, logger *slog.Logger) *ActivityCleanupScheduler {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &ActivityCleanupScheduler{
		pruner:        pruner,
		schedule:      schedule,
		retentionDays: retentionDays,
		logger:        logger,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// ValidateSchedule checks a standard five-field cron expression.
func ValidateSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	_, err := parser.Parse(schedule)
	return err
}

// Start schedules the cleanup job and stops it when ctx is cancelled or
// Stop is called, whichever comes first.
func (s *ActivityCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule activity cleanup: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("Activity cleanup scheduler started",
		"schedule", s.schedule,
		"retention_days", s.retentionDays,
		"next_run", s.cron.Entry(entryID).Next)

	stop := make(chan struct{})
	watcherDone := make(chan struct{})
	s.stop, s.watcherDone = stop, watcherDone
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			s.Stop()
		case <-stop:
		}
	}()

	return nil
}

// Stop waits for a running cleanup to finish and stops the scheduler.
func (s *ActivityCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	stopped := s.cron.Stop()
	<-stopped.Done()
	s.cron.Remove(s.entryID)
	s.isRunning = false
	close(s.stop)

	s.logger.Info("Activity cleanup scheduler stopped")
}

func (s *ActivityCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunNow prunes immediately and returns the number of deleted events.
func (s *ActivityCleanupScheduler) RunNow() (int64, error) {
	retention := time.Duration(s.retentionDays) * 24 * time.Hour
	deleted, err := s.pruner.DeleteOldEvents(retention)
	if err != nil {
		s.logger.Error("Activity cleanup failed", "err", err)
		return 0, fmt.Errorf("cleanup activity events: %w", err)
	}
	s.logger.Info("Activity cleanup finished", "deleted", deleted, "retention_days", s.retentionDays)
	return deleted, nil
}
