package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(handler)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	log, buf := newBufferLogger()

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_Attrs(t *testing.T) {
	log, buf := newBufferLogger()

	log.Info(context.Background(), "request failed", "status", 500)
	require.Contains(t, buf.String(), "status=500")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferLogger()

	child := log.With("component", "auth")
	child.Info(context.Background(), "token evicted")

	require.Contains(t, buf.String(), "component=auth")
}
