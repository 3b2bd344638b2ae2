package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if a value cannot be decoded or validation fails.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, errors.Wrap(err, "config load")
	}

	cfg.Columns.Rate = cleanList(cfg.Columns.Rate)
	cfg.Columns.Required = cleanList(cfg.Columns.Required)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation")
	}

	return cfg, nil
}

// cleanList trims each entry and drops the empty ones.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("%s_LOG_LEVEL (%q) must be one of: debug, info, warn, error", Prefix, c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("%s_LOG_FORMAT (%q) must be one of: text, json", Prefix, c.Logging.Format))
	}

	if len(c.Columns.Rate) == 0 {
		errs = append(errs, Prefix+"_COLUMNS_RATE must list at least one column")
	}
	if len(c.Columns.Required) == 0 {
		errs = append(errs, Prefix+"_COLUMNS_REQUIRED must list at least one column")
	}

	if len(errs) > 0 {
		return errors.Newf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}, ", c.Logging.Level, c.Logging.Format))
	b.WriteString(fmt.Sprintf("Columns: {Rate: %v, Required: %v}", c.Columns.Rate, c.Columns.Required))
	b.WriteString("}")
	return b.String()
}
