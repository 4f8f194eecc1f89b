package metrics

import (
	"github.com/kilianp07/planner/core/logger"
	coremetrics "github.com/kilianp07/planner/core/metrics"
)

// NewSink builds the sinks named in cfg. No sinks yields a NopSink and several
// are combined in a MultiSink.
func NewSink(cfg coremetrics.Config, log logger.Logger) (coremetrics.MetricsSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var sinks []coremetrics.MetricsSink
	for _, name := range cfg.Sinks {
		switch name {
		case "prometheus":
			s, err := NewPromSink(cfg.Textfile)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, s)
		case "log":
			sinks = append(sinks, NewLogSink(log))
		}
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
