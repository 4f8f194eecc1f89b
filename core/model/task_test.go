package model

import (
	"testing"

	"github.com/kilianp07/planner/core/interval"
)

func TestTaskString(t *testing.T) {
	task := NewTask(3, "Gym", 2, interval.New(30, 90))
	if got := task.String(); got != "3-Gym-Day 2 [30, 90]" {
		t.Fatalf("unexpected string %q", got)
	}
}
