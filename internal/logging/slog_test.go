package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "count", 3)
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "count=3")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Must not panic, and Fatal must not exit.
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	logger.Fatal("msg")
}
