// Package infra contains technical adapters: the task file reader, the chart
// renderer, metrics sinks and the zerolog logger. These packages should depend
// only on the interfaces defined in the core packages.
package infra
