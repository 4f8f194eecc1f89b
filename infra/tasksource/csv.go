// Package tasksource reads task rows from delimited text files.
package tasksource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kilianp07/planner/core/interval"
	"github.com/kilianp07/planner/core/model"
)

// Columns every input file must provide.
var Columns = []string{"ID", "NAME", "DAY", "START", "END"}

// Row is one raw record of the task file.
type Row struct {
	Line  int
	ID    string
	Name  string
	Day   string
	Start string
	End   string
}

// Task converts the row into a Task whose interval is relative to dayStart.
func (r Row) Task(dayStart string) (model.Task, error) {
	id, err := strconv.Atoi(strings.TrimSpace(r.ID))
	if err != nil {
		return model.Task{}, fmt.Errorf("line %d: ID: %w", r.Line, err)
	}
	day, err := strconv.Atoi(strings.TrimSpace(r.Day))
	if err != nil {
		return model.Task{}, fmt.Errorf("line %d: DAY: %w", r.Line, err)
	}
	iv, err := interval.FromTimestamps(r.Start, r.End, dayStart)
	if err != nil {
		return model.Task{}, fmt.Errorf("line %d: %w", r.Line, err)
	}
	return model.NewTask(id, r.Name, day, iv), nil
}

// ReadRows parses the header and every following record of r. Columns are
// located by header name, so their order is free.
func ReadRows(r io.Reader, comma rune) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("read header: missing column %s", c)
		}
	}
	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{
			Line:  line,
			ID:    rec[idx["ID"]],
			Name:  rec[idx["NAME"]],
			Day:   rec[idx["DAY"]],
			Start: rec[idx["START"]],
			End:   rec[idx["END"]],
		})
	}
	return rows, nil
}

// Load reads the rows of the file at path.
func Load(path string, comma rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	rows, err := ReadRows(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
