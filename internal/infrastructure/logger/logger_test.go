package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("production honours level", func(t *testing.T) {
		l, err := New(true, "warn")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Core().Enabled(zapcore.InfoLevel) || !l.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("expected warn level")
		}
	})

	t.Run("development defaults to debug", func(t *testing.T) {
		l, err := New(false, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug enabled")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := New(true, "loud"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
