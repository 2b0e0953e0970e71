// Package database provides the storage layer for the activity log.
//
// The catalog itself is in memory only. What lands in SQLite is a record of
// catalog mutations, kept for inspection and pruned on a schedule:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── activity/        # Activity event CRUD
//
// Open the connection and hand its *gorm.DB to the repository:
//
//	db, err := database.NewDatabase("./bookshelf-activity.db", logger)
//	repo := activity.NewRepository(db.DB)
package database
