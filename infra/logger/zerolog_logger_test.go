package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corelogger "github.com/kilianp07/planner/core/logger"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLoggerTo(&bytes.Buffer{}, "test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "schedule")
	l.Infof("scheduled %d tasks", 3)
	assert.Contains(t, buf.String(), `"component":"schedule"`)
	assert.Contains(t, buf.String(), `"message":"scheduled 3 tasks"`)

	buf.Reset()
	w, ok := l.(corelogger.With)
	require.True(t, ok)
	w.With(map[string]any{"run_id": "abc"}).Warnf("late")
	assert.Contains(t, buf.String(), `"run_id":"abc"`)
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	require.NoError(t, SetLevel("warn"))
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "test")
	l.Infof("hidden")
	assert.Empty(t, buf.String())
	l.Errorf("shown")
	assert.Contains(t, buf.String(), "shown")

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Error(t, SetLevel("loud"))
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Infof("nothing")
	l.Debugw("nothing", nil)
}
