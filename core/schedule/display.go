package schedule

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/kilianp07/planner/core/chart"
)

// defaultLabelStep is the spacing in minutes of the generated time labels.
const defaultLabelStep = 30

// Display resolves cfg against the schedule and hands the chart to r. Omitted
// day labels, time labels, task colors and figure size are derived from the
// schedule.
func (s *Schedule) Display(cfg chart.Config, r chart.Renderer) error {
	g, err := s.Gantt(cfg)
	if err != nil {
		return err
	}
	return r.Render(g)
}

// Gantt builds the chart data Display renders.
func (s *Schedule) Gantt(cfg chart.Config) (chart.Gantt, error) {
	cfg.SetDefaults()
	days := len(s.days)
	width := s.horizon.Width()

	if cfg.DayLabels == nil {
		cfg.DayLabels = make([]string, days)
		for i := range cfg.DayLabels {
			cfg.DayLabels[i] = strconv.Itoa(i)
		}
	} else if len(cfg.DayLabels) != days {
		return chart.Gantt{}, fmt.Errorf("got %d day labels, want %d (planning days)", len(cfg.DayLabels), days)
	}
	if cfg.TimeLabels == nil {
		for m := 0; m <= width; m += defaultLabelStep {
			cfg.TimeLabels = append(cfg.TimeLabels, strconv.Itoa(m))
		}
	}
	if cfg.FigureSize.IsZero() {
		cfg.FigureSize = chart.FigureSize{
			Width:  min(16, float64(days)*3.2),
			Height: min(9, float64(days)*1.8),
		}
	}

	colors, err := s.taskColors(cfg.TaskColors)
	if err != nil {
		return chart.Gantt{}, err
	}

	g := chart.Gantt{
		Config:       cfg,
		HorizonWidth: width,
		Ticks:        chart.TickPositions(width, cfg.TimeLabels),
		Days:         make([]chart.Day, days),
	}
	for _, f := range []struct {
		dst *color.NRGBA
		src string
	}{
		{&g.LineColor, cfg.LineColor},
		{&g.DayColor, cfg.DayColor},
		{&g.TaskLabelColor, cfg.TaskLabelColor},
		{&g.BackgroundColor, cfg.BackgroundColor},
	} {
		c, err := chart.ParseHex(f.src)
		if err != nil {
			return chart.Gantt{}, err
		}
		*f.dst = c
	}

	names := s.TaskNames()
	for i, ranges := range s.TaskRanges() {
		day := chart.Day{Label: cfg.DayLabels[i], Bars: make([]chart.Bar, len(ranges))}
		for j, rg := range ranges {
			day.Bars[j] = chart.Bar{
				Start: rg.Start,
				Width: rg.Width,
				Label: strings.ReplaceAll(names[i][j], " ", "\n"),
				Color: colors[i][j],
			}
		}
		g.Days[i] = day
	}
	return g, nil
}

func (s *Schedule) taskColors(override [][]string) ([][]color.NRGBA, error) {
	if override == nil {
		keys := s.ColorKeys()
		out := make([][]color.NRGBA, len(keys))
		for i, day := range keys {
			out[i] = make([]color.NRGBA, len(day))
			for j, k := range day {
				out[i][j] = chart.Tab20.At(k)
			}
		}
		return out, nil
	}
	if len(override) != len(s.days) {
		return nil, fmt.Errorf("got task colors for %d days, want %d", len(override), len(s.days))
	}
	out := make([][]color.NRGBA, len(s.days))
	for i, day := range s.days {
		if len(override[i]) != len(day) {
			return nil, fmt.Errorf("day %d: got %d task colors, want %d", i, len(override[i]), len(day))
		}
		out[i] = make([]color.NRGBA, len(day))
		for j, hex := range override[i] {
			c, err := chart.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("day %d task %d: %w", i, j, err)
			}
			out[i][j] = c
		}
	}
	return out, nil
}
