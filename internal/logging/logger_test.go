package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	// Save original logger to restore later
	originalLogger := defaultLogger

	defer func() {
		defaultLogger = originalLogger
	}()

	testCases := []struct {
		name          string
		level         LogLevel
		expectedLevel slog.Level
	}{
		{
			name:          "Debug level",
			level:         LevelDebug,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "Info level",
			level:         LevelInfo,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "Warn level",
			level:         LevelWarn,
			expectedLevel: slog.LevelWarn,
		},
		{
			name:          "Error level",
			level:         LevelError,
			expectedLevel: slog.LevelError,
		},
		{
			name:          "Invalid level defaults to Error",
			level:         LogLevel("invalid"),
			expectedLevel: slog.LevelError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(&buf, tc.level)

			if defaultLogger == nil {
				t.Fatal("defaultLogger is nil after setup")
			}

			Info("test message")
			output := buf.String()

			// At info level and below the message must appear; above it
			// the output must stay empty so a normal run is silent.
			if tc.expectedLevel <= slog.LevelInfo {
				if !strings.Contains(output, "test message") {
					t.Errorf("Expected log output, got: %q", output)
				}
			} else if output != "" {
				t.Errorf("Expected no output at level %s, got: %q", tc.level, output)
			}
		})
	}
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "<not set>",
		},
		{
			name:     "Short string",
			input:    "abc",
			expected: "<set>",
		},
		{
			name:     "Exactly 4 characters",
			input:    "abcd",
			expected: "<set>",
		},
		{
			name:     "Token-like string",
			input:    "2Dn5j8fk39Dkf0s",
			expected: "2Dn5...***",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MaskSensitive(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}
