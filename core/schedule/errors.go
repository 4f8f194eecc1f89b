package schedule

import (
	"errors"
	"fmt"
)

// ErrIncompatibleTask matches every insertion failure.
var ErrIncompatibleTask = errors.New("incompatible task")

// Cause tells why a task could not be scheduled.
type Cause int

const (
	CauseDayOutOfRange Cause = iota + 1
	CauseOutsideHorizon
	CauseOverlap
)

func (c Cause) String() string {
	switch c {
	case CauseDayOutOfRange:
		return "day_out_of_range"
	case CauseOutsideHorizon:
		return "outside_horizon"
	case CauseOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// IncompatibleTaskError is returned by AddTask.
type IncompatibleTaskError struct {
	TaskID int
	// ConflictID is the scheduled task hit by an overlap. Only set for CauseOverlap.
	ConflictID int
	Cause      Cause
	msg        string
}

func (e *IncompatibleTaskError) Error() string { return e.msg }

// Is makes errors.Is(err, ErrIncompatibleTask) true.
func (e *IncompatibleTaskError) Is(target error) bool { return target == ErrIncompatibleTask }

func dayOutOfRange(id, days int) error {
	return &IncompatibleTaskError{
		TaskID: id,
		Cause:  CauseDayOutOfRange,
		msg:    fmt.Sprintf("day of task %d is not between 0 and %d", id, days-1),
	}
}

func outsideHorizon(id int) error {
	return &IncompatibleTaskError{
		TaskID: id,
		Cause:  CauseOutsideHorizon,
		msg:    fmt.Sprintf("task %d is not in the planning horizon", id),
	}
}

func overlap(id, other int) error {
	return &IncompatibleTaskError{
		TaskID:     id,
		ConflictID: other,
		Cause:      CauseOverlap,
		msg:        fmt.Sprintf("task %d overlaps with task %d", id, other),
	}
}
