package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
// Only the integer syntax of each field is checked; "25:99" yields 1599.
// A lone field is read as hours.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return 0, fmt.Errorf("parse clock %q: too many fields", s)
	}
	minutes := 0
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("parse clock %q: %w", s, err)
		}
		if i == 0 {
			minutes += v * 60
		} else {
			minutes += v
		}
	}
	return minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM". Negative counts get a
// single leading minus sign.
func FormatClock(minutes int) string {
	if minutes < 0 {
		return "-" + FormatClock(-minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FromTimestamps builds the interval between start and end, both shifted so that
// dayStart becomes minute zero.
func FromTimestamps(start, end, dayStart string) (Interval, error) {
	ds, err := ParseClock(dayStart)
	if err != nil {
		return Interval{}, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return New(s-ds, e-ds), nil
}

// Labels returns wall-clock labels every step minutes from dayStart up to and
// including dayStart+width.
func Labels(dayStart, width, step int) []string {
	if step <= 0 || width < 0 {
		return nil
	}
	labels := make([]string, 0, width/step+1)
	for m := dayStart; m <= dayStart+width; m += step {
		labels = append(labels, FormatClock(m))
	}
	return labels
}
