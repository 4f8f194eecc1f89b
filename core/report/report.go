// Package report summarises how the week's time is spent.
package report

import (
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Allocation is the weekly total of one task name.
type Allocation struct {
	Name    string
	Minutes int
}

// Hours returns the total in hours.
func (a Allocation) Hours() float64 { return float64(a.Minutes) / 60 }

// Source is the part of a schedule the report reads.
type Source interface {
	TaskNames() [][]string
	TimeAllocation() map[string]int
	DailyLoad() []int
}

// Allocations returns the weekly totals sorted by minutes, largest first. Names
// with equal totals keep the order in which they first appear in the week.
func Allocations(src Source) []Allocation {
	alloc := src.TimeAllocation()
	seen := make(map[string]bool, len(alloc))
	out := make([]Allocation, 0, len(alloc))
	for _, day := range src.TaskNames() {
		for _, name := range day {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, Allocation{Name: name, Minutes: alloc[name]})
		}
	}
	slices.SortStableFunc(out, func(a, b Allocation) int { return b.Minutes - a.Minutes })
	return out
}

// WriteAllocations prints one "<name> <hours> hours" line per allocation.
func WriteAllocations(w io.Writer, allocs []Allocation) error {
	for _, a := range allocs {
		if _, err := fmt.Fprintf(w, "%-12s %.2f hours\n", a.Name, a.Hours()); err != nil {
			return err
		}
	}
	return nil
}

// Load describes how busy the planning days are.
type Load struct {
	// Minutes scheduled per day.
	Minutes []float64
	Mean    float64
	StdDev  float64
	// Busiest is the index of the day with the most scheduled minutes.
	Busiest int
	// Utilisation is the share of all horizon minutes in the week that are scheduled.
	Utilisation float64
}

// DailyLoad computes load statistics given the width of one planning day.
func DailyLoad(src Source, horizonWidth int) Load {
	daily := src.DailyLoad()
	l := Load{Minutes: make([]float64, len(daily))}
	for i, m := range daily {
		l.Minutes[i] = float64(m)
	}
	if len(l.Minutes) == 0 {
		return l
	}
	l.Mean, l.StdDev = stat.MeanStdDev(l.Minutes, nil)
	if len(l.Minutes) == 1 {
		l.StdDev = 0
	}
	l.Busiest = floats.MaxIdx(l.Minutes)
	if capacity := float64(horizonWidth * len(l.Minutes)); capacity > 0 {
		l.Utilisation = floats.Sum(l.Minutes) / capacity
	}
	return l
}

// WriteLoad prints one line per day followed by the weekly summary.
func WriteLoad(w io.Writer, l Load, labels []string) error {
	for i, m := range l.Minutes {
		label := fmt.Sprint(i)
		if i < len(labels) {
			label = labels[i]
		}
		if _, err := fmt.Fprintf(w, "%-12s %.2f hours\n", label, m/60); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "mean %.2f hours/day, stddev %.2f, utilisation %.1f%%\n",
		l.Mean/60, l.StdDev/60, l.Utilisation*100)
	return err
}
