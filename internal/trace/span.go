package trace

import (
	"context"
	"sync/atomic"
)

type collectorKey struct{}

type spanKey struct{}

var ephemeralIDs atomic.Uint64

// WithCollector returns a context carrying c. Spans started from the
// returned context, or any context derived from it, are recorded in c.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// FromContext returns the collector carried by ctx, or nil.
func FromContext(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

// Span is a handle to an open span. A nil *Span is valid and does nothing,
// which is what Start hands out when tracing is disabled.
type Span struct {
	c  *Collector
	id EphemeralID
}

// StartOption configures Start.
type StartOption func(*startConfig)

type startConfig struct {
	level  Level
	target string
	attrs  map[string]any
}

// AtLevel sets the span level. Spans default to LevelInfo.
func AtLevel(level Level) StartOption {
	return func(c *startConfig) {
		c.level = level
	}
}

// WithTarget sets the span target, usually the package doing the work.
func WithTarget(target string) StartOption {
	return func(c *startConfig) {
		c.target = target
	}
}

// WithAttr records an attribute as soon as the span opens.
func WithAttr(key string, value any) StartOption {
	return func(c *startConfig) {
		if c.attrs == nil {
			c.attrs = make(map[string]any)
		}

		c.attrs[key] = value
	}
}

// Start opens a span named name as a child of the span in ctx, if any.
func Start(ctx context.Context, name string, opts ...StartOption) (context.Context, *Span) {
	c := FromContext(ctx)
	if c == nil {
		return ctx, nil
	}

	cfg := startConfig{level: LevelInfo, target: DefaultServiceName}
	for _, opt := range opts {
		opt(&cfg)
	}

	parent := NoParent
	if p := SpanFromContext(ctx); p != nil && p.c == c {
		parent = p.id
	}

	span := &Span{c: c, id: EphemeralID(ephemeralIDs.Add(1))}
	c.StartSpan(span.id, parent, name, cfg.level, cfg.target)

	for k, v := range cfg.attrs {
		c.RecordAttribute(span.id, k, v)
	}

	return context.WithValue(ctx, spanKey{}, span), span
}

// SpanFromContext returns the innermost span in ctx, or nil.
func SpanFromContext(ctx context.Context) *Span {
	s, _ := ctx.Value(spanKey{}).(*Span)
	return s
}

// SetAttr records an attribute on the span.
func (s *Span) SetAttr(key string, value any) {
	if s == nil {
		return
	}

	s.c.RecordAttribute(s.id, key, value)
}

// End closes the span. A non-nil err marks it as failed.
func (s *Span) End(err error) {
	if s == nil {
		return
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}

	s.c.EndSpan(s.id, msg)
}

// ID returns the ephemeral id of the span.
func (s *Span) ID() EphemeralID {
	if s == nil {
		return NoParent
	}

	return s.id
}
