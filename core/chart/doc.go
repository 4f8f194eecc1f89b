// Package chart defines the contract between a schedule and the components that
// draw it as a Gantt chart: the render configuration with its defaults, the
// resolved chart data and the categorical palette used for task colors.
package chart
