package chart

// FigureSize is the chart size in inches.
type FigureSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether no size was requested.
func (f FigureSize) IsZero() bool { return f.Width <= 0 || f.Height <= 0 }

// Config collects every knob of the Gantt rendering. Colors are hex strings in
// #rgb, #rrggbb or #rrggbbaa form, the # being optional. Fields left empty by
// the caller are resolved when the chart is built: day labels, time labels,
// task colors and figure size.
type Config struct {
	// DayLabels names each planning day. Defaults to the day index.
	DayLabels []string `json:"day_labels"`
	// TimeLabels annotates the time axis. Defaults to minute offsets every 30 minutes.
	TimeLabels []string `json:"time_labels"`
	// DayHeight is the height of one day bar in data units.
	DayHeight float64 `json:"day_height"`
	// DaySpacing is the gap between two day bars in data units.
	DaySpacing float64 `json:"day_spacing"`
	// TaskColors overrides the palette, one color per task in day order.
	TaskColors [][]string `json:"task_colors"`
	LineColor  string     `json:"line_color"`
	// LineWidth of the bar outlines in points. Zero disables outlines.
	LineWidth      float64 `json:"line_width"`
	DayColor       string  `json:"day_color"`
	TaskLabelColor string  `json:"task_label_color"`
	// TaskLabelFontSize falls back to FontSize when zero.
	TaskLabelFontSize float64 `json:"task_label_font_size"`
	XLabel            string  `json:"x_label"`
	YLabel            string  `json:"y_label"`
	// Tick label rotations in degrees.
	XTickRotation float64 `json:"x_tick_rotation"`
	YTickRotation float64 `json:"y_tick_rotation"`
	Grid          bool    `json:"grid"`
	// FigureSize defaults to min(16, days*3.2) x min(9, days*1.8) inches.
	FigureSize FigureSize `json:"figure_size"`
	FontSize   float64    `json:"font_size"`
	// XMargin extends the time axis on both sides, in minutes.
	XMargin float64 `json:"x_margin"`
	// Padding around the figure, in multiples of FontSize.
	Padding         float64 `json:"padding"`
	BackgroundColor string  `json:"background_color"`
	// Show prints the chart to the terminal.
	Show bool `json:"show"`
	// SaveFile is the PNG output path. Empty disables the export.
	SaveFile string `json:"save_file"`
	DPI      int    `json:"dpi"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DayHeight:       14,
		DaySpacing:      2,
		LineColor:       "#000000ff",
		LineWidth:       0,
		DayColor:        "#ffffffff",
		TaskLabelColor:  "#ffffff",
		FontSize:        12,
		XMargin:         0,
		Padding:         1,
		BackgroundColor: "#e6e6e6",
		Show:            true,
		DPI:             300,
	}
}

// SetDefaults fills zero-valued sizes with their defaults. Colors, labels and
// flags are left as they are.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.DayHeight <= 0 {
		c.DayHeight = d.DayHeight
	}
	if c.DaySpacing < 0 {
		c.DaySpacing = d.DaySpacing
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.TaskLabelFontSize <= 0 {
		c.TaskLabelFontSize = c.FontSize
	}
	if c.DPI <= 0 {
		c.DPI = d.DPI
	}
	if c.LineColor == "" {
		c.LineColor = d.LineColor
	}
	if c.DayColor == "" {
		c.DayColor = d.DayColor
	}
	if c.TaskLabelColor == "" {
		c.TaskLabelColor = d.TaskLabelColor
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = d.BackgroundColor
	}
}

// Validate checks the fixed colors parse.
func (c Config) Validate() error {
	for _, s := range []string{c.LineColor, c.DayColor, c.TaskLabelColor, c.BackgroundColor} {
		if s == "" {
			continue
		}
		if _, err := ParseHex(s); err != nil {
			return err
		}
	}
	return nil
}
