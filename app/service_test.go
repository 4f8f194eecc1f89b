package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/planner/config"
	corechart "github.com/kilianp07/planner/core/chart"
	"github.com/kilianp07/planner/core/schedule"
)

const week = `ID,NAME,DAY,START,END
1,Deep Work,0,07:00,09:00
2,Gym,0,18:00,19:00
3,Deep Work,1,07:00,10:00
4,Reading,2,21:00,22:00
5,Gym,3,18:00,19:00
`

type captureRenderer struct {
	gantt corechart.Gantt
	calls int
}

func (c *captureRenderer) Render(g corechart.Gantt) error {
	c.gantt = g
	c.calls++
	return nil
}

func newService(t *testing.T, tasks string, mutate func(*config.Config)) (*Service, *bytes.Buffer, *captureRenderer) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.csv")
	require.NoError(t, os.WriteFile(path, []byte(tasks), 0o644))
	cfg := config.Default()
	cfg.Input.Path = path
	cfg.Chart.SaveFile = filepath.Join(dir, "schedule.png")
	if mutate != nil {
		mutate(&cfg)
	}
	var out bytes.Buffer
	svc, err := New(&cfg, &out)
	require.NoError(t, err)
	r := &captureRenderer{}
	svc.Renderer = r
	return svc, &out, r
}

func TestRun(t *testing.T) {
	svc, out, r := newService(t, week, nil)
	require.NoError(t, svc.Run(context.Background()))

	assert.Equal(t, "Deep Work    5.00 hours\nGym          2.00 hours\nReading      1.00 hours\n", out.String())
	require.Equal(t, 1, r.calls)
	assert.Equal(t, "Mon", r.gantt.Days[0].Label)
	assert.Equal(t, "06:30", r.gantt.Ticks[0].Label)
	assert.Equal(t, 1020, r.gantt.HorizonWidth)
	assert.Equal(t, "Deep\nWork", r.gantt.Days[0].Bars[0].Label)
	assert.Equal(t, 30, r.gantt.Days[0].Bars[0].Start)
	assert.NotEmpty(t, svc.RunID())
}

func TestRunAbortsOnFirstConflict(t *testing.T) {
	tasks := week + "6,Nap,0,08:00,08:30\n7,Late,9,07:00,08:00\n"
	svc, out, r := newService(t, tasks, nil)
	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, schedule.ErrIncompatibleTask))
	assert.Contains(t, err.Error(), "task 6 overlaps with task 1")
	assert.Empty(t, out.String())
	assert.Zero(t, r.calls)
}

func TestRunSkipReportsAllConflicts(t *testing.T) {
	tasks := week + "6,Nap,0,08:00,08:30\n7,Late,9,07:00,08:00\nx,Bad,0,07:00,08:00\n"
	svc, out, r := newService(t, tasks, func(c *config.Config) {
		c.Planning.OnConflict = config.OnConflictSkip
	})
	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 task(s) skipped")
	assert.Contains(t, err.Error(), "line 7: task 6 overlaps with task 1")
	assert.Contains(t, err.Error(), "line 8: day of task 7 is not between 0 and 6")
	assert.Contains(t, err.Error(), "line 9")
	assert.True(t, strings.HasPrefix(out.String(), "Deep Work"))
	assert.Equal(t, 1, r.calls)
}

func TestRunParseFailure(t *testing.T) {
	svc, _, _ := newService(t, "ID,NAME,DAY,START,END\n1,A,0,7h,08:00\n", nil)
	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, schedule.ErrIncompatibleTask))
}

func TestRunMissingFile(t *testing.T) {
	svc, _, _ := newService(t, week, func(c *config.Config) {
		c.Input.Path = filepath.Join(t.TempDir(), "none.csv")
	})
	assert.ErrorContains(t, svc.Run(context.Background()), "load tasks")
}

func TestRunCancelled(t *testing.T) {
	svc, _, _ := newService(t, week, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.Run(ctx), context.Canceled)
}

func TestRunWritesMetricsTextfile(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "planner.prom")
	svc, _, _ := newService(t, week, func(c *config.Config) {
		c.Metrics.Sinks = []string{"prometheus", "log"}
		c.Metrics.Textfile = prom
	})
	require.NoError(t, svc.Run(context.Background()))
	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `planner_tasks_scheduled_total{day="0"} 2`)
	assert.Contains(t, string(data), `planner_allocated_minutes{name="Deep Work"} 300`)
}

func TestCheck(t *testing.T) {
	svc, _, _ := newService(t, week, nil)
	plan, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Len(t, plan.Schedule.Tasks(), 5)

	svc, _, _ = newService(t, week+"6,Nap,0,08:00,08:30\n7,Nap,1,08:00,08:30\n", nil)
	plan, err = svc.Check(context.Background())
	require.Error(t, err)
	assert.Len(t, plan.Conflicts, 2)
	assert.Len(t, plan.Schedule.Tasks(), 5)
}

func TestReportWithLoad(t *testing.T) {
	svc, out, r := newService(t, week, nil)
	require.NoError(t, svc.Report(context.Background(), true))
	assert.Zero(t, r.calls)
	assert.Contains(t, out.String(), "Deep Work    5.00 hours\n")
	assert.Contains(t, out.String(), "Mon          3.00 hours\n")
	assert.Contains(t, out.String(), "utilisation")
}

func TestExport(t *testing.T) {
	svc, _, _ := newService(t, week, nil)
	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf, FormatCSV))
	assert.Equal(t, week, buf.String())

	buf.Reset()
	require.NoError(t, svc.Export(context.Background(), &buf, FormatJSON))
	assert.Contains(t, buf.String(), `"name": "Reading"`)

	assert.Error(t, svc.Export(context.Background(), &buf, "xml"))
}
