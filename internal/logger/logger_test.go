package logger

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		if log := New(level); log == nil {
			t.Errorf("New(%q) returned nil", level)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "record %s finished in %dms", "rec-1", 42)
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		want        bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug suppressed at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn suppressed at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			if got := log.shouldLog(tt.logLevel); got != tt.want {
				t.Errorf("shouldLog(%q) = %v, want %v", tt.logLevel, got, tt.want)
			}
		})
	}
}
