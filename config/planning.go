package config

import (
	"fmt"

	"github.com/kilianp07/planner/core/interval"
)

// Conflict policies.
const (
	OnConflictAbort = "abort"
	OnConflictSkip  = "skip"
)

// PlanningConfig describes the weekly grid.
type PlanningConfig struct {
	// DayStart and DayEnd bound every planning day, as HH:MM.
	DayStart  string   `json:"day_start"`
	DayEnd    string   `json:"day_end"`
	DayLabels []string `json:"day_labels"`
	// LabelStepMinutes spaces the time axis labels.
	LabelStepMinutes int `json:"label_step_minutes"`
	// OnConflict is "abort" to stop on the first incompatible task or "skip"
	// to schedule the rest and report every conflict.
	OnConflict string `json:"on_conflict"`
}

// DefaultPlanning is a 06:30-23:30 Monday to Sunday week.
func DefaultPlanning() PlanningConfig {
	return PlanningConfig{
		DayStart:         "06:30",
		DayEnd:           "23:30",
		DayLabels:        []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		LabelStepMinutes: 30,
		OnConflict:       OnConflictAbort,
	}
}

// Days returns the number of planning days.
func (c PlanningConfig) Days() int { return len(c.DayLabels) }

// Horizon returns the planning day relative to DayStart.
func (c PlanningConfig) Horizon() (interval.Interval, error) {
	return interval.FromTimestamps(c.DayStart, c.DayEnd, c.DayStart)
}

// DayStartMinutes returns DayStart as minutes since midnight.
func (c PlanningConfig) DayStartMinutes() (int, error) {
	return interval.ParseClock(c.DayStart)
}

// TimeLabels returns wall-clock labels every LabelStepMinutes across the horizon.
func (c PlanningConfig) TimeLabels() ([]string, error) {
	start, err := c.DayStartMinutes()
	if err != nil {
		return nil, err
	}
	h, err := c.Horizon()
	if err != nil {
		return nil, err
	}
	return interval.Labels(start, h.Width(), c.LabelStepMinutes), nil
}

// Validate checks the grid is usable.
func (c PlanningConfig) Validate() error {
	h, err := c.Horizon()
	if err != nil {
		return fmt.Errorf("planning: %w", err)
	}
	if start, _ := c.DayStartMinutes(); start < 0 {
		return fmt.Errorf("planning: day_start %s is before midnight", c.DayStart)
	}
	if h.Width() <= 0 {
		return fmt.Errorf("planning: day_end %s must be after day_start %s", c.DayEnd, c.DayStart)
	}
	if len(c.DayLabels) == 0 {
		return fmt.Errorf("planning: day_labels is required")
	}
	if c.LabelStepMinutes <= 0 {
		return fmt.Errorf("planning: label_step_minutes must be positive")
	}
	if c.OnConflict != OnConflictAbort && c.OnConflict != OnConflictSkip {
		return fmt.Errorf("planning: unknown on_conflict %q", c.OnConflict)
	}
	return nil
}
