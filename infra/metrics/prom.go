package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/planner/core/metrics"
	"github.com/kilianp07/planner/core/model"
)

// PromSink records scheduling outcomes in Prometheus metrics and writes them
// to a node-exporter style textfile on Flush.
type PromSink struct {
	registry  *prometheus.Registry
	scheduled *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	allocated *prometheus.GaugeVec
	textfile  string
}

// NewPromSink registers the planner metrics on a fresh registry.
func NewPromSink(textfile string) (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.NewRegistry(), textfile)
}

// NewPromSinkWithRegistry registers metrics on reg. A nil registry gets a fresh one.
func NewPromSinkWithRegistry(reg *prometheus.Registry, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	scheduled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_tasks_scheduled_total",
		Help: "Total number of tasks placed in the schedule",
	}, []string{"day"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_tasks_rejected_total",
		Help: "Total number of tasks that could not be scheduled",
	}, []string{"cause"})
	allocated := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "planner_allocated_minutes",
		Help: "Minutes allocated per task name over the week",
	}, []string{"name"})

	for _, c := range []prometheus.Collector{scheduled, rejected, allocated} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return &PromSink{
		registry:  reg,
		scheduled: scheduled,
		rejected:  rejected,
		allocated: allocated,
		textfile:  textfile,
	}, nil
}

// RecordTaskScheduled increments the scheduled counter of the task's day.
func (s *PromSink) RecordTaskScheduled(t model.Task) error {
	s.scheduled.WithLabelValues(strconv.Itoa(t.Day)).Inc()
	return nil
}

// RecordTaskRejected increments the rejected counter for cause.
func (s *PromSink) RecordTaskRejected(_ model.Task, cause string) error {
	s.rejected.WithLabelValues(cause).Inc()
	return nil
}

// RecordAllocation sets one gauge per task name.
func (s *PromSink) RecordAllocation(alloc map[string]int) error {
	s.allocated.Reset()
	for name, minutes := range alloc {
		s.allocated.WithLabelValues(name).Set(float64(minutes))
	}
	return nil
}

// Gatherer exposes the underlying registry.
func (s *PromSink) Gatherer() prometheus.Gatherer { return s.registry }

// Flush writes the current metrics to the textfile. It is a no-op without one.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

var (
	_ coremetrics.MetricsSink        = (*PromSink)(nil)
	_ coremetrics.AllocationRecorder = (*PromSink)(nil)
	_ coremetrics.Flusher            = (*PromSink)(nil)
)
