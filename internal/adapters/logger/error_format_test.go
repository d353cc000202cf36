package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			wantMessages: []string{
				"outer layer",
				"middle layer",
				"root cause",
			},
		},
		{
			name:         "standard error stops traversal",
			err:          zerr.Wrap(errors.New("io fault"), "cache persist failed"),
			wantMessages: []string{"cache persist failed", "io fault"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := logger.CollectErrorEntries(tt.err)
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		messages []string
		want     []string
	}{
		{
			name:     "single message",
			messages: []string{"fetch failed"},
			want:     []string{"Error: fetch failed"},
		},
		{
			name:     "message with cause",
			messages: []string{"fetch failed", "connection refused"},
			want: []string{
				"Error: fetch failed",
				"",
				"  Caused by:",
				"    → connection refused",
			},
		},
		{
			name:     "multiple causes",
			messages: []string{"outer", "middle", "inner"},
			want: []string{
				"Error: outer",
				"",
				"  Caused by:",
				"    → middle",
				"    → inner",
			},
		},
		{
			name:     "multiline main message",
			messages: []string{"line1\nline2"},
			want: []string{
				"Error: line1",
				"       line2",
			},
		},
		{
			name:     "empty input",
			messages: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := logger.FormatErrorEntries(tt.messages)
			assert.Equal(t, tt.want, got)
		})
	}
}
