// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Prefix is prepended to every environment variable name.
const Prefix = "TIMESHEET"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig `envconfig:"LOG"`
	Columns ColumnsConfig `envconfig:"COLUMNS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `envconfig:"LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `envconfig:"FORMAT" default:"text"`
}

// ColumnsConfig holds the header columns a timesheet must carry.
type ColumnsConfig struct {
	// Rate lists the accepted names of the rate column, comma separated
	Rate []string `envconfig:"RATE" default:"hourly_rate,rate,salary"`

	// Required lists the columns every header must contain, comma separated
	Required []string `envconfig:"REQUIRED" default:"id,email,name,department,hours_worked"`
}
