package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCaptureLogger(levels ...slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	})
	return slog.New(NewConditionalSourceHandler(base, levels...)), &buf
}

func TestConditionalSourceHandler_SourcePerLevel(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		levels     []slog.Level
		wantSource bool
	}{
		{
			name:       "info stays bare with the default levels",
			log:        func(l *slog.Logger) { l.Info("part created") },
			levels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: false,
		},
		{
			name:       "warn carries a source location",
			log:        func(l *slog.Logger) { l.Warn("rate limit nearly exhausted") },
			levels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: true,
		},
		{
			name:       "error carries a source location",
			log:        func(l *slog.Logger) { l.Error("failed to persist vote") },
			levels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: true,
		},
		{
			name:       "debug stays bare with the default levels",
			log:        func(l *slog.Logger) { l.Debug("cache miss") },
			levels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			wantSource: false,
		},
		{
			name:       "debug mode adds sources on every level",
			log:        func(l *slog.Logger) { l.Info("part created") },
			levels:     []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError},
			wantSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newCaptureLogger(tt.levels...)
			tt.log(logger)

			if tt.wantSource {
				assert.Contains(t, buf.String(), "source=")
			} else {
				assert.NotContains(t, buf.String(), "source=")
			}
		})
	}
}

func TestConditionalSourceHandler_PreservesAttrs(t *testing.T) {
	logger, buf := newCaptureLogger(slog.LevelError)

	logger.With("build_list_id", 42).Info("item added")

	assert.NotContains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "build_list_id=42")
}

func TestConditionalSourceHandler_PreservesGroups(t *testing.T) {
	logger, buf := newCaptureLogger(slog.LevelError)

	logger.WithGroup("request").Info("handled", "path", "/api/v1/parts")

	assert.NotContains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "request.path=/api/v1/parts")
}

func TestConditionalSourceHandler_EnabledDelegates(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	ctx := context.Background()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelError))
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
}
