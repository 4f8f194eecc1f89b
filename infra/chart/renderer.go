// Package chart draws Gantt charts as PNG images and as terminal text.
package chart

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	corechart "github.com/kilianp07/planner/core/chart"
	"github.com/kilianp07/planner/core/logger"
)

// Renderer implements chart.Renderer. The chart is always drawn; it is
// exported when SaveFile is set and printed to Out when Show is set. The zero
// value draws without logging and prints nothing.
type Renderer struct {
	Out     io.Writer
	Columns int
	log     logger.Logger
}

// NewRenderer returns a Renderer printing to out.
func NewRenderer(out io.Writer, log logger.Logger) *Renderer {
	return &Renderer{Out: out, Columns: DefaultColumns, log: log}
}

func (r *Renderer) Render(g corechart.Gantt) error {
	canvas := paint(g)
	if path := g.Config.SaveFile; path != "" {
		if err := writePNG(path, canvas); err != nil {
			return err
		}
		if r.log != nil {
			r.log.Infof("chart written to %s at %d dpi", path, g.Config.DPI)
		}
	}
	if g.Config.Show && r.Out != nil {
		if _, err := io.WriteString(r.Out, Terminal(g, r.Columns)); err != nil {
			return fmt.Errorf("show chart: %w", err)
		}
	}
	return nil
}

// paint draws g on an in-memory canvas of the configured size and resolution.
func paint(g corechart.Gantt) *vgimg.Canvas {
	cfg := g.Config
	w := vg.Length(cfg.FigureSize.Width) * vg.Inch
	h := vg.Length(cfg.FigureSize.Height) * vg.Inch
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(cfg.DPI),
		vgimg.UseBackgroundColor(g.BackgroundColor),
	)
	dc := draw.New(c)
	pad := vg.Points(cfg.Padding * cfg.FontSize)
	newPlot(g).Draw(draw.Crop(dc, pad, -pad, pad, -pad))
	return c
}

func writePNG(path string, c *vgimg.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save chart: %w", cerr)
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
