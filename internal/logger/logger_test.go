package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewProductionLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{"info by default", false, false},
		{"debug when enabled", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := NewProductionLogger(tt.debugMode)
			if err != nil {
				t.Fatalf("NewProductionLogger() error = %v", err)
			}
			got := l.Core().Enabled(zapcore.DebugLevel)
			if got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestStdLogger_WritesAtDebug(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	std := StdLogger(zap.New(core), "cors")
	std.Printf("preflight from %s", "https://a.com")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("Expected debug level, got %v", entries[0].Level)
	}
	if entries[0].LoggerName != "cors" {
		t.Errorf("Expected logger name 'cors', got %q", entries[0].LoggerName)
	}
	if entries[0].Message != "preflight from https://a.com" {
		t.Errorf("Unexpected message %q", entries[0].Message)
	}
}

func TestSync_NilLogger(t *testing.T) {
	t.Parallel()

	if err := Sync(nil); err != nil {
		t.Errorf("Sync(nil) error = %v", err)
	}
}
