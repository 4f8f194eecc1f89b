package metrics

import "github.com/kilianp07/planner/core/model"

// CauseParse is the rejection cause of a row that could not be read as a task.
// The task passed along with it is the zero value.
const CauseParse = "parse"

// MetricsSink records scheduling outcomes for observability purposes.
type MetricsSink interface {
	RecordTaskScheduled(t model.Task) error
	// RecordTaskRejected is called with the reason the task did not fit,
	// e.g. "overlap" or "parse".
	RecordTaskRejected(t model.Task, cause string) error
}

// AllocationRecorder records the weekly minutes per task name.
type AllocationRecorder interface {
	RecordAllocation(alloc map[string]int) error
}

// Flusher is implemented by sinks that buffer until the run ends.
type Flusher interface {
	Flush() error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordTaskScheduled(model.Task) error        { return nil }
func (NopSink) RecordTaskRejected(model.Task, string) error { return nil }
func (NopSink) RecordAllocation(map[string]int) error       { return nil }
