package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/planner/core/interval"
	"github.com/kilianp07/planner/core/model"
)

// Entry is a scheduled task with wall-clock times.
type Entry struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Day     int    `json:"day" yaml:"day"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// Entries converts tasks back to wall-clock entries; dayStart is in minutes
// since midnight.
func Entries(tasks []model.Task, dayStart int) []Entry {
	out := make([]Entry, len(tasks))
	for i, t := range tasks {
		out[i] = Entry{
			ID:      t.ID,
			Name:    t.Name,
			Day:     t.Day,
			Start:   interval.FormatClock(dayStart + t.Interval.Left()),
			End:     interval.FormatClock(dayStart + t.Interval.Right()),
			Minutes: t.Interval.Width(),
		}
	}
	return out
}

// WriteJSON writes the entries to w in JSON format.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteYAML writes the entries to w in YAML format.
func WriteYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes the entries using the input file layout, so the output can
// be read back as a task file.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "NAME", "DAY", "START", "END"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.Itoa(e.ID),
			e.Name,
			strconv.Itoa(e.Day),
			e.Start,
			e.End,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
