package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Log
		Security
		Activity
		Seed
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Log struct {
		Level   string
		TUIPath string // Log file used by the terminal UI; empty discards
	}
	Security struct {
		CSRFEnabled   bool
		CSRFSecret    string // Hex or raw; generated per process if empty
		SecureCookies bool   // Set to true when served over HTTPS
	}
	Activity struct {
		Enabled         bool
		DatabasePath    string
		RetentionDays   int    // Days to keep activity events (default: 30)
		CleanupSchedule string // Cron format: "0 * * * *" = hourly
	}
	Seed struct {
		Enabled bool // Start with the two sample books
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("log_level", "info")
	v.SetDefault("tui_log_path", DefaultTUILogPath)

	// Security defaults
	v.SetDefault("csrf_enabled", true)
	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", false)

	// Activity log defaults
	v.SetDefault("activity_enabled", true)
	v.SetDefault("activity_database_path", DefaultActivityDatabasePath)
	v.SetDefault("activity_retention_days", 30)
	v.SetDefault("activity_cleanup_schedule", "0 * * * *") // Hourly at :00

	v.SetDefault("seed_books", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Level:   v.GetString("LOG_LEVEL"),
			TUIPath: v.GetString("TUI_LOG_PATH"),
		},
		Security: Security{
			CSRFEnabled:   v.GetBool("CSRF_ENABLED"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Activity: Activity{
			Enabled:         v.GetBool("ACTIVITY_ENABLED"),
			DatabasePath:    v.GetString("ACTIVITY_DATABASE_PATH"),
			RetentionDays:   v.GetInt("ACTIVITY_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("ACTIVITY_CLEANUP_SCHEDULE"),
		},
		Seed: Seed{
			Enabled: v.GetBool("SEED_BOOKS"),
		},
	}
}
