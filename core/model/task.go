package model

import (
	"fmt"

	"github.com/kilianp07/planner/core/interval"
)

// Task is one activity placed on a day of the planning week.
type Task struct {
	ID       int
	Name     string // aggregation and color key, not unique
	Day      int    // 0-based index into the week
	Interval interval.Interval
}

// NewTask builds a Task.
func NewTask(id int, name string, day int, iv interval.Interval) Task {
	return Task{ID: id, Name: name, Day: day, Interval: iv}
}

func (t Task) String() string {
	return fmt.Sprintf("%d-%s-Day %d %s", t.ID, t.Name, t.Day, t.Interval)
}
