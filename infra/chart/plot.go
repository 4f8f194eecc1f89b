package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	corechart "github.com/kilianp07/planner/core/chart"
)

// bars draws the day backgrounds, the task segments and their labels.
type bars struct {
	g corechart.Gantt
}

func (b bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(b.g.HorizonWidth), 0, b.g.Height()
}

func (b bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	cfg := b.g.Config
	line := draw.LineStyle{Color: b.g.LineColor, Width: vg.Points(cfg.LineWidth)}

	label := plt.X.Tick.Label
	label.Color = b.g.TaskLabelColor
	label.Font.Size = vg.Points(cfg.TaskLabelFontSize)
	label.Rotation = math.Pi / 2
	label.XAlign = draw.XCenter
	label.YAlign = draw.YCenter

	rect := func(x0, x1, y0, y1 float64, fill color.Color) {
		pts := []vg.Point{
			{X: trX(x0), Y: trY(y0)},
			{X: trX(x1), Y: trY(y0)},
			{X: trX(x1), Y: trY(y1)},
			{X: trX(x0), Y: trY(y1)},
		}
		c.FillPolygon(fill, c.ClipPolygonXY(pts))
		if line.Width > 0 {
			c.StrokeLines(line, c.ClipLinesXY(append(pts, pts[0]))...)
		}
	}

	for i, day := range b.g.Days {
		y0 := b.g.RowBase(i)
		y1 := y0 + cfg.DayHeight
		rect(0, float64(b.g.HorizonWidth), y0, y1, b.g.DayColor)
		for _, bar := range day.Bars {
			x0 := float64(bar.Start)
			x1 := x0 + float64(bar.Width)
			rect(x0, x1, y0, y1, bar.Color)
			pt := vg.Point{X: trX((x0 + x1) / 2), Y: trY((y0 + y1) / 2)}
			if c.Contains(pt) {
				c.FillText(label, pt, bar.Label)
			}
		}
	}
}

func degrees(d float64) float64 { return d * math.Pi / 180 }

// newPlot lays out the axes of g and adds the bars and the grid.
func newPlot(g corechart.Gantt) *plot.Plot {
	cfg := g.Config
	p := plot.New()
	p.BackgroundColor = g.BackgroundColor
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(cfg.FontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(cfg.FontSize)

	xticks := make(plot.ConstantTicks, len(g.Ticks))
	for i, t := range g.Ticks {
		xticks[i] = plot.Tick{Value: float64(t.Value), Label: t.Label}
	}
	p.X.Tick.Marker = xticks
	p.X.Tick.Label.Font.Size = vg.Points(cfg.FontSize)
	if cfg.XTickRotation != 0 {
		p.X.Tick.Label.Rotation = degrees(cfg.XTickRotation)
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	yticks := make(plot.ConstantTicks, len(g.Days))
	for i, d := range g.Days {
		yticks[i] = plot.Tick{Value: g.RowBase(i) + cfg.DayHeight/2, Label: d.Label}
	}
	p.Y.Tick.Marker = yticks
	p.Y.Tick.Label.Font.Size = vg.Points(cfg.FontSize)
	if cfg.YTickRotation != 0 {
		p.Y.Tick.Label.Rotation = degrees(cfg.YTickRotation)
		p.Y.Tick.Label.XAlign = draw.XCenter
		p.Y.Tick.Label.YAlign = draw.YBottom
	}

	p.Add(bars{g: g})
	// the grid goes over the day rows
	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	p.X.Min = -cfg.XMargin
	p.X.Max = float64(g.HorizonWidth) + cfg.XMargin
	p.Y.Min = 0
	p.Y.Max = g.Height()
	return p
}
