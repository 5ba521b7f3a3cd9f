package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestSetGlobalLoggerNilInstallsNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}

func TestWithFieldsReturnsIndependentLogger(t *testing.T) {
	base := NewDefaultLoggerNoColor()
	derived := base.WithFields(Fields{"component": "test"})

	assert.NotSame(t, base, derived)

	// Preset fields show up in formatted output
	formatted := derived.(*DefaultLogger).formatMessage(InfoLevel, nil, "msg")
	assert.Contains(t, formatted, "component")
}

func TestFormatMessageIncludesError(t *testing.T) {
	logger := NewDefaultLoggerNoColor()
	formatted := logger.formatMessage(ErrorLevel, assert.AnError, "failed")

	assert.Contains(t, formatted, "[ERROR]")
	assert.Contains(t, formatted, "failed")
	assert.Contains(t, formatted, assert.AnError.Error())
}
