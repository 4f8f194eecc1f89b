package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	corechart "github.com/kilianp07/planner/core/chart"
)

// DefaultColumns is the width of the time axis in the terminal view.
const DefaultColumns = 96

// Terminal renders g as colored text rows, one per day, with the time axis
// scaled to columns characters.
func Terminal(g corechart.Gantt, columns int) string {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if g.HorizonWidth <= 0 || len(g.Days) == 0 {
		return ""
	}
	scale := float64(columns) / float64(g.HorizonWidth)
	col := func(m int) int {
		c := int(float64(m)*scale + 0.5)
		return min(max(c, 0), columns)
	}

	labelWidth := 0
	for _, d := range g.Days {
		labelWidth = max(labelWidth, lipgloss.Width(d.Label))
	}
	labelStyle := lipgloss.NewStyle().Bold(true).Width(labelWidth + 1)
	dayStyle := lipgloss.NewStyle().Background(lipgloss.Color(corechart.Hex(g.DayColor)))

	var rows []string
	for _, d := range g.Days {
		var b strings.Builder
		b.WriteString(labelStyle.Render(d.Label))
		pos := 0
		for _, bar := range d.Bars {
			start := max(col(bar.Start), pos)
			end := col(bar.Start + bar.Width)
			if end <= start && bar.Width > 0 && start < columns {
				end = start + 1
			}
			if end <= start {
				continue
			}
			if start > pos {
				b.WriteString(dayStyle.Render(strings.Repeat(" ", start-pos)))
			}
			name := strings.ReplaceAll(bar.Label, "\n", " ")
			barStyle := lipgloss.NewStyle().
				Background(lipgloss.Color(corechart.Hex(bar.Color))).
				Foreground(lipgloss.Color(corechart.Hex(g.TaskLabelColor)))
			b.WriteString(barStyle.Render(fit(name, end-start)))
			pos = end
		}
		if pos < columns {
			b.WriteString(dayStyle.Render(strings.Repeat(" ", columns-pos)))
		}
		rows = append(rows, b.String())
	}
	rows = append(rows, strings.Repeat(" ", labelWidth+1)+axis(g.Ticks, col, columns))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// fit pads or truncates s to exactly n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}

// axis places tick labels at their column, skipping those that would collide.
func axis(ticks []corechart.Tick, col func(int) int, columns int) string {
	line := []rune(strings.Repeat(" ", columns+8))
	next := 0
	for _, t := range ticks {
		c := col(t.Value)
		label := []rune(t.Label)
		if c < next || c+len(label) > len(line) {
			continue
		}
		copy(line[c:], label)
		next = c + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}
