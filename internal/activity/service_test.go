package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/catalog"
	activityRepo "github.com/mrlokans/bookshelf/internal/database/activity"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/logging"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.ActivityEvent{}))

	svc := NewService(activityRepo.NewRepository(db), entities.SurfaceWeb, logging.Discard())
	return svc, db
}

func TestService_Log(t *testing.T) {
	svc, db := setupTestService(t)

	event := &entities.ActivityEvent{Action: entities.ActivityBookAdd, Title: "Dune"}
	require.NoError(t, svc.Log(event))

	var saved entities.ActivityEvent
	require.NoError(t, db.First(&saved, event.ID).Error)
	assert.Equal(t, "Dune", saved.Title)
	assert.Equal(t, entities.SurfaceWeb, saved.Surface)
	assert.Len(t, saved.EventID, 36)
}

func TestService_ObservesCatalog(t *testing.T) {
	svc, _ := setupTestService(t)

	c := catalog.New()
	c.SetObserver(svc)

	c.Add(entities.NewBookRecord("Dune", "Frank Herbert", 412, false))
	c.Add(entities.NewBookRecord("Emma", "Jane Austen", 474, true))
	_, err := c.ToggleRead(0)
	require.NoError(t, err)
	_, err = c.Remove(1)
	require.NoError(t, err)
	svc.Wait()

	events, total, err := svc.GetEvents("", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byAction := map[entities.ActivityAction][]entities.ActivityEvent{}
	for _, e := range events {
		byAction[e.Action] = append(byAction[e.Action], e)
	}
	assert.Len(t, byAction[entities.ActivityBookAdd], 2)
	require.Len(t, byAction[entities.ActivityBookToggleRead], 1)
	assert.True(t, byAction[entities.ActivityBookToggleRead][0].HasBeenRead)
	require.Len(t, byAction[entities.ActivityBookRemove], 1)
	removed := byAction[entities.ActivityBookRemove][0]
	assert.Equal(t, "Emma", removed.Title)
	assert.Equal(t, 1, removed.Position)
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	require.NoError(t, svc.Log(&entities.ActivityEvent{
		Action:    entities.ActivityBookAdd,
		CreatedAt: time.Now().Add(-40 * 24 * time.Hour),
	}))
	require.NoError(t, svc.Log(&entities.ActivityEvent{Action: entities.ActivityBookAdd}))

	deleted, err := svc.DeleteOldEvents(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
