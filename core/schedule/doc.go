// Package schedule keeps the tasks of a planning week in per-day chronological
// order and rejects tasks that fall outside the week, outside the daily horizon
// or on top of an already scheduled task.
package schedule
