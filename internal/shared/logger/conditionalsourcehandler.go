package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// NewConditionalSourceHandler wraps a handler so that source locations
// appear only on the listed levels. The wrapped handler must be built
// with AddSource disabled; this wrapper records the caller itself for
// the levels it covers.
func NewConditionalSourceHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	withSource := make(map[slog.Level]bool, len(levels))
	for _, lvl := range levels {
		withSource[lvl] = true
	}
	return &conditionalSourceHandler{next: next, withSource: withSource}
}

type conditionalSourceHandler struct {
	next       slog.Handler
	withSource map[slog.Level]bool
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.withSource[r.Level] {
		// Skip Callers, Handle, and slog's internal log frame to land
		// on the actual call site.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frames := runtime.CallersFrames(pcs[:])
		frame, _ := frames.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.next.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithAttrs(attrs), withSource: h.withSource}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithGroup(name), withSource: h.withSource}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}
