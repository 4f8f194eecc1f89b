package schedule

import (
	"errors"
	"slices"
	"strings"

	"github.com/kilianp07/planner/core/interval"
	"github.com/kilianp07/planner/core/model"
)

// Schedule holds the tasks of a planning week.
type Schedule struct {
	horizon interval.Interval
	days    [][]model.Task
	// enum numbers task names in first-seen order
	enum  map[string]int
	names []string
}

// New creates an empty Schedule of days planning days sharing the horizon.
func New(horizon interval.Interval, days int) *Schedule {
	if days < 0 {
		days = 0
	}
	return &Schedule{
		horizon: horizon,
		days:    make([][]model.Task, days),
		enum:    make(map[string]int),
	}
}

// Horizon returns the interval spanning one planning day.
func (s *Schedule) Horizon() interval.Interval { return s.horizon }

// Days returns the number of planning days.
func (s *Schedule) Days() int { return len(s.days) }

// AddTask inserts t keeping its day ordered by start time. The schedule is left
// untouched when an error is returned.
func (s *Schedule) AddTask(t model.Task) error {
	if t.Day < 0 || t.Day >= len(s.days) {
		return dayOutOfRange(t.ID, len(s.days))
	}
	if !t.Interval.IsIn(s.horizon) {
		return outsideHorizon(t.ID)
	}
	day := s.days[t.Day]
	j := len(day) - 1
	for ; j >= 0; j-- {
		left := day[j]
		if left.Interval.Overlaps(t.Interval) {
			return overlap(t.ID, left.ID)
		}
		if left.Interval.Left() <= t.Interval.Left() {
			break
		}
	}
	if _, ok := s.enum[t.Name]; !ok {
		s.enum[t.Name] = len(s.names)
		s.names = append(s.names, t.Name)
	}
	s.days[t.Day] = slices.Insert(day, j+1, t)
	return nil
}

// AddTasks inserts every task it can and returns all failures joined.
func (s *Schedule) AddTasks(tasks []model.Task) error {
	var errs []error
	for _, t := range tasks {
		if err := s.AddTask(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Schedule) String() string {
	var b strings.Builder
	for _, day := range s.days {
		b.WriteByte('[')
		for i, t := range day {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.Name)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
