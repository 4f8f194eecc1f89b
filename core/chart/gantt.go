package chart

import "image/color"

// Tick is a labeled position on the time axis, in minutes from day start.
type Tick struct {
	Value int
	Label string
}

// Bar is one task segment.
type Bar struct {
	Start int
	Width int
	// Label is the task name with spaces turned into line breaks.
	Label string
	Color color.NRGBA
}

// Day is one row of the chart.
type Day struct {
	Label string
	Bars  []Bar
}

// Gantt is a fully resolved chart ready to be drawn.
type Gantt struct {
	Config       Config
	HorizonWidth int
	Ticks        []Tick
	Days         []Day

	LineColor       color.NRGBA
	DayColor        color.NRGBA
	TaskLabelColor  color.NRGBA
	BackgroundColor color.NRGBA
}

// Renderer draws a Gantt chart.
type Renderer interface {
	Render(g Gantt) error
}

// RowBase returns the bottom coordinate of row i.
func (g Gantt) RowBase(i int) float64 {
	return float64(i) * (g.Config.DayHeight + g.Config.DaySpacing)
}

// Height returns the total height of all rows in data units.
func (g Gantt) Height() float64 {
	n := len(g.Days)
	if n == 0 {
		return 0
	}
	return float64(n)*(g.Config.DayHeight+g.Config.DaySpacing) - g.Config.DaySpacing
}

// TickPositions spreads labels across width: step = width/len(labels) + 1,
// positions 0, step, ... up to width. Labels beyond the last position are dropped.
func TickPositions(width int, labels []string) []Tick {
	if len(labels) == 0 || width < 0 {
		return nil
	}
	step := width/len(labels) + 1
	ticks := make([]Tick, 0, len(labels))
	for i, v := 0, 0; v <= width && i < len(labels); i, v = i+1, v+step {
		ticks = append(ticks, Tick{Value: v, Label: labels[i]})
	}
	return ticks
}
