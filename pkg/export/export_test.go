package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/planner/core/interval"
	"github.com/kilianp07/planner/core/model"
	"github.com/kilianp07/planner/infra/tasksource"
)

func sampleEntries() []Entry {
	tasks := []model.Task{
		model.NewTask(1, "Deep Work", 0, interval.New(30, 90)),
		model.NewTask(2, "Gym", 3, interval.New(690, 750)),
	}
	return Entries(tasks, 390)
}

func TestEntries(t *testing.T) {
	e := sampleEntries()
	require.Len(t, e, 2)
	assert.Equal(t, Entry{ID: 1, Name: "Deep Work", Day: 0, Start: "07:00", End: "08:00", Minutes: 60}, e[0])
	assert.Equal(t, "18:00", e[1].Start)
}

func TestWriteCSVReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))
	assert.Equal(t, "ID,NAME,DAY,START,END\n1,Deep Work,0,07:00,08:00\n2,Gym,3,18:00,19:00\n", buf.String())

	rows, err := tasksource.ReadRows(&buf, ',')
	require.NoError(t, err)
	task, err := rows[1].Task("06:30")
	require.NoError(t, err)
	assert.Equal(t, interval.New(690, 750), task.Interval)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleEntries()))
	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleEntries()))
	assert.Contains(t, buf.String(), "name: Deep Work")
	var got []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)
}
