package config

// Default paths
const (
	// DefaultActivityDatabasePath is where the activity log lives unless overridden
	DefaultActivityDatabasePath = "./bookshelf-activity.db"

	// DefaultTUILogPath receives logs while the terminal UI owns the screen
	DefaultTUILogPath = "./bookshelf-tui.log"
)
