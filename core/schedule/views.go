package schedule

import "github.com/kilianp07/planner/core/model"

// Range is the start and width of a scheduled task in minutes.
type Range struct {
	Start int
	Width int
}

func mapDays[T any](s *Schedule, f func(model.Task) T) [][]T {
	out := make([][]T, len(s.days))
	for i, day := range s.days {
		out[i] = make([]T, len(day))
		for j, t := range day {
			out[i][j] = f(t)
		}
	}
	return out
}

// TaskNames returns the task names of each day in scheduled order.
func (s *Schedule) TaskNames() [][]string {
	return mapDays(s, func(t model.Task) string { return t.Name })
}

// TaskRanges returns the start and width of each task per day.
func (s *Schedule) TaskRanges() [][]Range {
	return mapDays(s, func(t model.Task) Range {
		return Range{Start: t.Interval.Left(), Width: t.Interval.Width()}
	})
}

// TaskIDs returns the task ids of each day in scheduled order.
func (s *Schedule) TaskIDs() [][]int {
	return mapDays(s, func(t model.Task) int { return t.ID })
}

// ColorKeys maps each task to its name's first-seen position divided by the
// number of distinct names, a value in [0,1).
func (s *Schedule) ColorKeys() [][]float64 {
	n := float64(len(s.names))
	return mapDays(s, func(t model.Task) float64 { return float64(s.enum[t.Name]) / n })
}

// TimeAllocation returns the minutes allotted to each task name over the week.
func (s *Schedule) TimeAllocation() map[string]int {
	alloc := make(map[string]int)
	for _, day := range s.days {
		for _, t := range day {
			alloc[t.Name] += t.Interval.Width()
		}
	}
	return alloc
}

// Names lists the distinct task names in the order they were first scheduled.
func (s *Schedule) Names() []string {
	return append([]string(nil), s.names...)
}

// Tasks returns all tasks, day by day in chronological order.
func (s *Schedule) Tasks() []model.Task {
	var out []model.Task
	for _, day := range s.days {
		out = append(out, day...)
	}
	return out
}

// DailyLoad returns the scheduled minutes of each day.
func (s *Schedule) DailyLoad() []int {
	load := make([]int, len(s.days))
	for i, day := range s.days {
		for _, t := range day {
			load[i] += t.Interval.Width()
		}
	}
	return load
}
