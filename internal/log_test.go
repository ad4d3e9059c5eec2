package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"ERROR", LogLevelError},
		{"warn", LogLevelWarn},
		{" debug ", LogLevelDebug},
		{"TRACE", LogLevelTrace},
		{"", LogLevelInfo},
		{"verbose", LogLevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLogLevel(tt.input), "input %q", tt.input)
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("boom %d", 1)
	logger.Info("ignored")
	logger.Trace("ignored")
	assert.Equal(t, LogLevelError, logger.GetLevel())
}
