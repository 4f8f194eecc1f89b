package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	names [][]string
	alloc map[string]int
	load  []int
}

func (f fakeSource) TaskNames() [][]string         { return f.names }
func (f fakeSource) TimeAllocation() map[string]int { return f.alloc }
func (f fakeSource) DailyLoad() []int               { return f.load }

func TestAllocationsSorted(t *testing.T) {
	src := fakeSource{
		names: [][]string{{"Read", "Gym"}, {"Work"}, {"Gym"}},
		alloc: map[string]int{"Read": 60, "Gym": 120, "Work": 60},
	}
	got := Allocations(src)
	assert.Equal(t, []Allocation{{"Gym", 120}, {"Read", 60}, {"Work", 60}}, got)
}

func TestWriteAllocations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAllocations(&buf, []Allocation{{"Work", 2400}, {"Gym", 45}}))
	assert.Equal(t, "Work         40.00 hours\nGym          0.75 hours\n", buf.String())
}

func TestDailyLoad(t *testing.T) {
	l := DailyLoad(fakeSource{load: []int{60, 120, 0, 60}}, 120)
	assert.InDelta(t, 60, l.Mean, 1e-9)
	assert.Equal(t, 1, l.Busiest)
	assert.InDelta(t, 0.5, l.Utilisation, 1e-9)
	assert.Greater(t, l.StdDev, 0.0)

	single := DailyLoad(fakeSource{load: []int{30}}, 60)
	assert.Zero(t, single.StdDev)
	assert.Zero(t, DailyLoad(fakeSource{}, 60).Mean)
}

func TestWriteLoad(t *testing.T) {
	var buf bytes.Buffer
	l := Load{Minutes: []float64{60, 90}, Mean: 75, StdDev: 0, Utilisation: 0.25}
	require.NoError(t, WriteLoad(&buf, l, []string{"Mon"}))
	assert.Equal(t, "Mon          1.00 hours\n1            1.50 hours\nmean 1.25 hours/day, stddev 0.00, utilisation 25.0%\n", buf.String())
}
