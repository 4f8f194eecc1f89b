package metrics

import (
	"github.com/kilianp07/planner/core/logger"
	coremetrics "github.com/kilianp07/planner/core/metrics"
	"github.com/kilianp07/planner/core/model"
)

// LogSink writes scheduling outcomes as structured debug logs.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a LogSink writing to l.
func NewLogSink(l logger.Logger) *LogSink { return &LogSink{log: l} }

func (s *LogSink) RecordTaskScheduled(t model.Task) error {
	s.log.Debugw("task scheduled", map[string]any{
		"task_id": t.ID,
		"name":    t.Name,
		"day":     t.Day,
		"start":   t.Interval.Left(),
		"end":     t.Interval.Right(),
	})
	return nil
}

func (s *LogSink) RecordTaskRejected(t model.Task, cause string) error {
	fields := map[string]any{"cause": cause}
	if cause != coremetrics.CauseParse {
		fields["task_id"] = t.ID
		fields["day"] = t.Day
	}
	s.log.Debugw("task rejected", fields)
	return nil
}

func (s *LogSink) RecordAllocation(alloc map[string]int) error {
	fields := make(map[string]any, len(alloc))
	for name, minutes := range alloc {
		fields[name] = minutes
	}
	s.log.Debugw("weekly allocation", fields)
	return nil
}
