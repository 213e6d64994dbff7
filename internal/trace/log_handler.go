package trace

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// LogHandler forwards records to the next handler and also copies them onto
// the span carried by the record's context, as "event.<n>" attributes.
type LogHandler struct {
	next   slog.Handler
	events *atomic.Uint64
	attrs  []slog.Attr
}

// NewLogHandler wraps next.
func NewLogHandler(next slog.Handler) *LogHandler {
	return &LogHandler{next: next, events: &atomic.Uint64{}}
}

// Enabled implements slog.Handler.
func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := SpanFromContext(ctx); span != nil {
		n := h.events.Add(1)
		key := fmt.Sprintf("event.%d", n)
		span.SetAttr(key, r.Message)

		for _, a := range h.attrs {
			span.SetAttr(key+"."+a.Key, a.Value.String())
		}

		r.Attrs(func(a slog.Attr) bool {
			span.SetAttr(key+"."+a.Key, a.Value.String())
			return true
		})
	}

	return h.next.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &LogHandler{next: h.next.WithAttrs(attrs), events: h.events, attrs: merged}
}

// WithGroup implements slog.Handler.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{next: h.next.WithGroup(name), events: h.events, attrs: h.attrs}
}
