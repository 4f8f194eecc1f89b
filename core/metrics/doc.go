// Package metrics defines the sinks that observe scheduling outcomes. A sink
// is told about every scheduled and rejected task and about the final weekly
// allocation. Implementations live in infra/metrics.
package metrics
