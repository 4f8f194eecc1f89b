package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/kilianp07/planner/config"
	corechart "github.com/kilianp07/planner/core/chart"
	corelogger "github.com/kilianp07/planner/core/logger"
	coremetrics "github.com/kilianp07/planner/core/metrics"
	"github.com/kilianp07/planner/core/report"
	"github.com/kilianp07/planner/core/schedule"
	"github.com/kilianp07/planner/infra/chart"
	"github.com/kilianp07/planner/infra/logger"
	"github.com/kilianp07/planner/infra/metrics"
	"github.com/kilianp07/planner/infra/tasksource"
	"github.com/kilianp07/planner/pkg/export"
)

// Service turns a task file into a validated week, its report and its chart.
type Service struct {
	Sink     coremetrics.MetricsSink
	Renderer corechart.Renderer
	cfg      *config.Config
	out      io.Writer
	log      logger.Logger
	runID    string
}

// Plan is the outcome of loading the task file.
type Plan struct {
	Schedule *schedule.Schedule
	// Conflicts holds the rows skipped under the skip policy.
	Conflicts []error
}

// New creates a Service from the configuration. Reports and the terminal chart
// go to out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	runID := uuid.NewString()
	var logg logger.Logger = logger.New("service")
	if w, ok := logg.(corelogger.With); ok {
		logg = w.With(map[string]any{"run_id": runID})
	}
	sink, err := metrics.NewSink(cfg.Metrics, logg)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		Sink:     sink,
		Renderer: chart.NewRenderer(out, logg),
		cfg:      cfg,
		out:      out,
		log:      logg,
		runID:    runID,
	}, nil
}

// RunID identifies this service instance in logs.
func (s *Service) RunID() string { return s.runID }

// Build reads the task file and schedules every row. Under the abort policy the
// first bad row is returned as the error; under skip the row is logged and
// collected in Plan.Conflicts.
func (s *Service) Build(ctx context.Context) (*Plan, error) {
	return s.build(ctx, s.cfg.Planning.OnConflict)
}

func (s *Service) build(ctx context.Context, policy string) (*Plan, error) {
	pc := s.cfg.Planning
	horizon, err := pc.Horizon()
	if err != nil {
		return nil, err
	}
	rows, err := tasksource.Load(s.cfg.Input.Path, s.cfg.Input.Comma())
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	s.log.Debugw("tasks loaded", map[string]any{"path": s.cfg.Input.Path, "rows": len(rows)})

	plan := &Plan{Schedule: schedule.New(horizon, pc.Days())}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		task, err := row.Task(pc.DayStart)
		cause := coremetrics.CauseParse
		if err == nil {
			err = plan.Schedule.AddTask(task)
			var ite *schedule.IncompatibleTaskError
			if errors.As(err, &ite) {
				cause = ite.Cause.String()
			}
		}
		if err != nil {
			s.record(s.Sink.RecordTaskRejected(task, cause))
			if policy != config.OnConflictSkip {
				return nil, err
			}
			s.log.Warnf("skipping line %d: %v", row.Line, err)
			plan.Conflicts = append(plan.Conflicts, fmt.Errorf("line %d: %w", row.Line, err))
			continue
		}
		s.record(s.Sink.RecordTaskScheduled(task))
	}
	s.log.Infof("scheduled %d of %d tasks", len(plan.Schedule.Tasks()), len(rows))
	return plan, nil
}

func (s *Service) record(err error) {
	if err != nil {
		s.log.Warnf("metrics: %v", err)
	}
}

// Run builds the week, prints the weekly allocation and renders the chart.
func (s *Service) Run(ctx context.Context) error {
	plan, err := s.Build(ctx)
	if err != nil {
		return err
	}
	if err := s.writeAllocations(plan.Schedule); err != nil {
		return err
	}
	timeLabels, err := s.cfg.Planning.TimeLabels()
	if err != nil {
		return err
	}
	cc := s.cfg.Chart
	cc.DayLabels = s.cfg.Planning.DayLabels
	cc.TimeLabels = timeLabels
	if err := plan.Schedule.Display(cc, s.Renderer); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if err := s.flush(); err != nil {
		return err
	}
	return conflictsError(plan.Conflicts)
}

// Check validates every row and returns all conflicts joined.
func (s *Service) Check(ctx context.Context) (*Plan, error) {
	plan, err := s.build(ctx, config.OnConflictSkip)
	if err != nil {
		return nil, err
	}
	if err := s.flush(); err != nil {
		return nil, err
	}
	return plan, conflictsError(plan.Conflicts)
}

// Report prints the weekly allocation and, with load set, the daily load.
func (s *Service) Report(ctx context.Context, load bool) error {
	plan, err := s.Build(ctx)
	if err != nil {
		return err
	}
	if err := s.writeAllocations(plan.Schedule); err != nil {
		return err
	}
	if load {
		l := report.DailyLoad(plan.Schedule, plan.Schedule.Horizon().Width())
		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
		if err := report.WriteLoad(s.out, l, s.cfg.Planning.DayLabels); err != nil {
			return err
		}
	}
	if err := s.flush(); err != nil {
		return err
	}
	return conflictsError(plan.Conflicts)
}

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export writes the scheduled tasks to w in format.
func (s *Service) Export(ctx context.Context, w io.Writer, format string) error {
	var write func(io.Writer, []export.Entry) error
	switch format {
	case FormatCSV:
		write = export.WriteCSV
	case FormatJSON:
		write = export.WriteJSON
	case FormatYAML, "yml":
		write = export.WriteYAML
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	plan, err := s.Build(ctx)
	if err != nil {
		return err
	}
	start, err := s.cfg.Planning.DayStartMinutes()
	if err != nil {
		return err
	}
	if err := write(w, export.Entries(plan.Schedule.Tasks(), start)); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return conflictsError(plan.Conflicts)
}

func (s *Service) writeAllocations(sch *schedule.Schedule) error {
	if rec, ok := s.Sink.(coremetrics.AllocationRecorder); ok {
		s.record(rec.RecordAllocation(sch.TimeAllocation()))
	}
	l := report.DailyLoad(sch, sch.Horizon().Width())
	s.log.Debugw("daily load", map[string]any{
		"mean_minutes": l.Mean,
		"stddev":       l.StdDev,
		"busiest_day":  l.Busiest,
		"utilisation":  l.Utilisation,
	})
	return report.WriteAllocations(s.out, report.Allocations(sch))
}

func (s *Service) flush() error {
	if f, ok := s.Sink.(coremetrics.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func conflictsError(conflicts []error) error {
	if len(conflicts) == 0 {
		return nil
	}
	return fmt.Errorf("%d task(s) skipped: %w", len(conflicts), errors.Join(conflicts...))
}
