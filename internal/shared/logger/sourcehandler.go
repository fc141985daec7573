package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceByLevelHandler struct {
	handler      slog.Handler
	sourceLevels map[slog.Level]bool
}

// NewSourceByLevelHandler wraps a handler so that source location is attached
// only for the given levels. The wrapped handler must be configured with
// AddSource: false; this wrapper adds the attribute itself when needed.
func NewSourceByLevelHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return &sourceByLevelHandler{handler: handler, sourceLevels: m}
}

func (h *sourceByLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevels[r.Level] {
		// Skip this frame plus the slog internals above it.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceByLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceByLevelHandler{handler: h.handler.WithAttrs(attrs), sourceLevels: h.sourceLevels}
}

func (h *sourceByLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceByLevelHandler{handler: h.handler.WithGroup(name), sourceLevels: h.sourceLevels}
}

func (h *sourceByLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
