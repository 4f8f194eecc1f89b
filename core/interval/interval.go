// Package interval provides the minute ranges tasks occupy within a planning day.
package interval

import "fmt"

// Interval is a range of minutes measured from the start of a planning day.
// Right is expected to be >= Left but this is not enforced.
type Interval struct {
	left  int
	right int
}

// New returns the interval [left, right].
func New(left, right int) Interval {
	return Interval{left: left, right: right}
}

func (i Interval) Left() int  { return i.left }
func (i Interval) Right() int { return i.right }

// Width returns right - left.
func (i Interval) Width() int { return i.right - i.left }

// IsIn reports whether i is fully contained in other. Shared endpoints count as contained.
func (i Interval) IsIn(other Interval) bool {
	return i.left >= other.left && i.right <= other.right
}

// Overlaps reports whether i and other share a strictly positive stretch of time.
// Intervals that only touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return min(i.right, other.right)-max(i.left, other.left) > 0
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.left, i.right)
}
