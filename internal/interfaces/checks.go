package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/activity"
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/table"
)

// =============================================================================
// Catalog
// =============================================================================

var _ catalog.Observer = (*activity.Service)(nil)

// =============================================================================
// Drawing
// =============================================================================

var _ table.Surface = (*table.HTMLSurface)(nil)
var _ table.Surface = (*table.TextSurface)(nil)

// =============================================================================
// Input
// =============================================================================

var _ form.Form = (*form.Values)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookLister = (*catalog.Catalog)(nil)
var _ http.Counter = (*catalog.Catalog)(nil)
var _ http.ActivityReader = (*activity.Service)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ scheduler.ActivityPruner = (*activity.Service)(nil)
