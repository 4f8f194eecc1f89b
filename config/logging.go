package config

import (
	"fmt"
)

// LoggingConfig defines the diagnostic log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error or disabled.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error", "disabled":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
