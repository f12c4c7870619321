package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"DEBUG":   LogLevelDebug,
		"info":    LogLevelInfo,
		"warn":    LogLevelWarn,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, ParseLogLevel(input), input)
	}
}
