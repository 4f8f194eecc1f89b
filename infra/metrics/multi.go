package metrics

import (
	"errors"

	coremetrics "github.com/kilianp07/planner/core/metrics"
	"github.com/kilianp07/planner/core/model"
)

// MultiSink fans scheduling outcomes out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTaskScheduled forwards to all sinks, returning the first error encountered.
func (m *MultiSink) RecordTaskScheduled(t model.Task) error {
	for _, s := range m.Sinks {
		if err := s.RecordTaskScheduled(t); err != nil {
			return err
		}
	}
	return nil
}

// RecordTaskRejected forwards to all sinks, returning the first error encountered.
func (m *MultiSink) RecordTaskRejected(t model.Task, cause string) error {
	for _, s := range m.Sinks {
		if err := s.RecordTaskRejected(t, cause); err != nil {
			return err
		}
	}
	return nil
}

// RecordAllocation forwards allocations when supported by the sink.
func (m *MultiSink) RecordAllocation(alloc map[string]int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.AllocationRecorder); ok {
			if err := rec.RecordAllocation(alloc); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every sink that buffers and joins their errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(coremetrics.Flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	return errors.Join(errs...)
}
