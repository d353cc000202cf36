package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webls/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return h, buf
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{
			name:  "info is plain",
			level: slog.LevelInfo,
			msg:   "fetched listing",
			want:  "fetched listing\n",
		},
		{
			name:  "warn gets marker",
			level: slog.LevelWarn,
			msg:   "cache miss",
			want:  "! cache miss\n",
		},
		{
			name:  "error gets marker",
			level: slog.LevelError,
			msg:   "fetch failed",
			want:  "✗ fetch failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			r := slog.NewRecord(time.Time{}, tt.level, tt.msg, 0)
			require.NoError(t, h.Handle(context.Background(), r))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_RecordAttrs(t *testing.T) {
	h, buf := newTestHandler(t)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "put entry", 0)
	r.AddAttrs(slog.String("url", "http://media.example/"), slog.Int("entries", 4))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "put entry url=http://media.example/ entries=4\n", buf.String())
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	h, buf := newTestHandler(t)

	withAttrs := h.WithAttrs([]slog.Attr{slog.String("component", "cache")})
	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "cleared", 0)
	require.NoError(t, withAttrs.Handle(context.Background(), r))

	assert.Equal(t, "cleared component=cache\n", buf.String())

	// The original handler is unchanged.
	buf.Reset()
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "cleared\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	h, buf := newTestHandler(t)

	grouped := h.WithGroup("store")
	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "purged", 0)
	r.AddAttrs(slog.Int("removed", 2))
	require.NoError(t, grouped.Handle(context.Background(), r))

	assert.Equal(t, "purged store.removed=2\n", buf.String())
}

func TestPrettyHandler_NilWriterDefaultsToStderr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	h := logger.NewPrettyHandler(nil, nil)
	assert.NotNil(t, h)
}
