package config

import (
	"fmt"
	"unicode/utf8"
)

// InputConfig locates the task file.
type InputConfig struct {
	Path string `json:"path"`
	// Delimiter is a single character separating the columns.
	Delimiter string `json:"delimiter"`
}

// SetDefaults applies sane defaults.
func (c *InputConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "tasks.csv"
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

// Comma returns the delimiter rune.
func (c InputConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("input: path is required")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("input: delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}
