package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIntervals() []Interval {
	var out []Interval
	for l := -2; l <= 6; l++ {
		for r := l; r <= 8; r += 2 {
			out = append(out, New(l, r))
		}
	}
	return out
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 60, New(30, 90).Width())
	assert.Equal(t, 0, New(5, 5).Width())
}

func TestOverlapsSymmetric(t *testing.T) {
	ivs := sampleIntervals()
	for _, a := range ivs {
		for _, b := range ivs {
			assert.Equalf(t, a.Overlaps(b), b.Overlaps(a), "%v vs %v", a, b)
		}
	}
}

func TestReflexive(t *testing.T) {
	for _, a := range sampleIntervals() {
		assert.Truef(t, a.IsIn(a), "%v in itself", a)
		assert.Equalf(t, a.Width() > 0, a.Overlaps(a), "%v overlaps itself", a)
	}
}

func TestTouchingEndpoints(t *testing.T) {
	a, b := New(0, 30), New(30, 60)
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
	assert.True(t, New(0, 31).Overlaps(b))
}

func TestIsIn(t *testing.T) {
	horizon := New(0, 1020)
	cases := []struct {
		name string
		iv   Interval
		want bool
	}{
		{"inside", New(30, 90), true},
		{"both edges", New(0, 1020), true},
		{"before start", New(-1, 30), false},
		{"past end", New(1000, 1021), false},
		{"empty at edge", New(1020, 1020), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.iv.IsIn(horizon))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[30, 90]", New(30, 90).String())
}

func TestFromTimestamps(t *testing.T) {
	iv, err := FromTimestamps("07:00", "08:00", "06:30")
	require.NoError(t, err)
	assert.Equal(t, 30, iv.Left())
	assert.Equal(t, 90, iv.Right())
	assert.Equal(t, 60, iv.Width())

	horizon, err := FromTimestamps("06:30", "23:30", "06:30")
	require.NoError(t, err)
	assert.Equal(t, New(0, 1020), horizon)
	assert.True(t, iv.IsIn(horizon))
}

func TestFromTimestampsErrors(t *testing.T) {
	_, err := FromTimestamps("7h", "08:00", "06:30")
	assert.Error(t, err)
	_, err = FromTimestamps("07:00", "08:00", "x")
	assert.Error(t, err)
	_, err = FromTimestamps("07:00", "08:00:00", "06:30")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"06:30": 390,
		"23:30": 1410,
		"7":     420,
		"25:99": 1599,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "06:30", FormatClock(390))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "23:30", FormatClock(1410))
	assert.Equal(t, "-00:30", FormatClock(-30))
	assert.Equal(t, "-01:15", FormatClock(-75))
}

func TestLabels(t *testing.T) {
	labels := Labels(390, 1020, 30)
	require.Len(t, labels, 35)
	assert.Equal(t, "06:30", labels[0])
	assert.Equal(t, "07:00", labels[1])
	assert.Equal(t, "23:30", labels[len(labels)-1])
	assert.Nil(t, Labels(0, 60, 0))
}
