package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn", "json")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("newLogger(warn): info enabled")
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("newLogger(warn): error disabled")
	}

	if _, err := newLogger("loud", "text"); err == nil {
		t.Fatalf("newLogger(loud): got nil error")
	}
	if _, err := newLogger("info", "xml"); err == nil {
		t.Fatalf("newLogger(xml): got nil error")
	}
}
