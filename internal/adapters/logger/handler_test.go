package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grepr/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{"info", slog.LevelInfo, "hello", "hello\n"},
		{"warn", slog.LevelWarn, "careful", "! careful\n"},
		{"error", slog.LevelError, "boom", "✗ boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t, slog.LevelInfo)
			require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), tt.level, tt.msg, 0)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t, slog.LevelWarn)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestPrettyHandler_NilOptions(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, nil)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t, slog.LevelInfo)

	withAttrs := h.WithAttrs([]slog.Attr{slog.String("path", "a.txt")})
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "opened", 0)
	r.AddAttrs(slog.Int("lines", 3))
	require.NoError(t, withAttrs.Handle(context.Background(), r))
	assert.Equal(t, "opened path=a.txt lines=3\n", buf.String())

	buf.Reset()
	grouped := h.WithGroup("target").WithAttrs([]slog.Attr{slog.String("path", "b.txt")})
	require.NoError(t, grouped.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "opened", 0)))
	assert.Equal(t, "opened target.path=b.txt\n", buf.String())

	buf.Reset()
	require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "plain", 0)))
	assert.Equal(t, "plain\n", buf.String(), "WithAttrs must not modify the parent handler")
}
