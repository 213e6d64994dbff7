// Package trace collects execution spans in process so they can be exported
// as JSON on demand. The target environments cannot open outbound
// connections, so spans are kept in a registry and handed to the caller
// instead of being pushed to a tracing backend.
//
// A Collector is usually threaded through a context.Context:
//
//	c := trace.New()
//	ctx := trace.WithCollector(context.Background(), c)
//	ctx, span := trace.Start(ctx, "compare")
//	defer span.End(nil)
//
//	data, _ := c.ExportJSON()
package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// DefaultServiceName is reported in exports unless overridden.
const DefaultServiceName = "goreg"

// EphemeralID identifies a span on the instrumentation side. It is only
// meaningful to the collector that saw it started.
type EphemeralID uint64

// NoParent marks a span without a parent.
const NoParent EphemeralID = 0

// Level is the verbosity a span was opened at.
type Level string

// Span levels.
const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Span statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SpanData is a finished span. It never changes once recorded.
type SpanData struct {
	SpanID       string            `json:"spanId"`
	ParentSpanID *string           `json:"parentSpanId,omitempty"`
	Name         string            `json:"name"`
	StartTimeMs  int64             `json:"startTimeMs"`
	EndTimeMs    int64             `json:"endTimeMs"`
	DurationMs   int64             `json:"durationMs"`
	Level        Level             `json:"level"`
	Target       string            `json:"target"`
	Attributes   map[string]string `json:"attributes"`
	Status       string            `json:"status"`
	ErrorMessage *string           `json:"errorMessage,omitempty"`
}

// TraceData is the export envelope.
type TraceData struct {
	ServiceName  string     `json:"serviceName"`
	TraceID      *string    `json:"traceId,omitempty"`
	ParentSpanID *string    `json:"parentSpanId,omitempty"`
	Spans        []SpanData `json:"spans"`
}

type activeSpan struct {
	stableID   uint64
	parentID   uint64 // 0 when the span has no resolvable parent
	name       string
	start      time.Time
	level      Level
	target     string
	attributes map[string]string
}

// Collector is a mutex-guarded span registry. The zero value is not usable;
// construct one with New or use Default.
type Collector struct {
	mu sync.Mutex

	serviceName string
	now         func() time.Time

	nextID   uint64
	idMap    map[EphemeralID]uint64
	active   map[EphemeralID]*activeSpan
	finished []SpanData

	traceID      *string
	parentSpanID *string
}

// Option configures a Collector.
type Option func(*Collector)

// WithServiceName sets the service name reported in exports.
func WithServiceName(name string) Option {
	return func(c *Collector) {
		c.serviceName = name
	}
}

// WithClock replaces the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// New returns an empty collector.
func New(opts ...Option) *Collector {
	c := &Collector{
		serviceName: DefaultServiceName,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.resetLocked()

	return c
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide collector.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = New()
	})

	return defaultCollector
}

// StartSpan opens a span. The parent is resolved through the ids seen so
// far; an unknown parent leaves the span without one.
func (c *Collector) StartSpan(id, parent EphemeralID, name string, level Level, target string) {
	start := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	stable := c.nextID
	c.idMap[id] = stable

	var parentStable uint64
	if parent != NoParent {
		parentStable = c.idMap[parent]
	}

	c.active[id] = &activeSpan{
		stableID:   stable,
		parentID:   parentStable,
		name:       name,
		start:      start,
		level:      level,
		target:     target,
		attributes: make(map[string]string),
	}
}

// RecordAttribute stores value, stringified, on an active span. Closed or
// unknown spans are ignored.
func (c *Collector) RecordAttribute(id EphemeralID, key string, value any) {
	str := fmt.Sprint(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if span, ok := c.active[id]; ok {
		span.attributes[key] = str
	}
}

// EndSpan finalizes a span. A non-empty errMsg marks it as failed. Ending a
// span twice, or one that was never started, does nothing.
func (c *Collector) EndSpan(id EphemeralID, errMsg string) {
	end := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	span, ok := c.active[id]
	if !ok {
		return
	}

	delete(c.active, id)

	duration := end.Sub(span.start)
	if duration < 0 {
		duration = 0
	}

	data := SpanData{
		SpanID:      formatID(span.stableID),
		Name:        span.name,
		StartTimeMs: span.start.UnixMilli(),
		EndTimeMs:   span.start.Add(duration).UnixMilli(),
		DurationMs:  duration.Milliseconds(),
		Level:       span.level,
		Target:      span.target,
		Attributes:  span.attributes,
		Status:      StatusOK,
	}

	if span.parentID != 0 {
		parent := formatID(span.parentID)
		data.ParentSpanID = &parent
	}

	if errMsg != "" {
		data.Status = StatusError
		data.ErrorMessage = &errMsg
	}

	c.finished = append(c.finished, data)
}

// SetExternalContext records identifiers handed over by an external caller
// so exported spans can be stitched into its trace. Empty strings clear them.
func (c *Collector) SetExternalContext(traceID, parentSpanID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.traceID = optional(traceID)
	c.parentSpanID = optional(parentSpanID)
}

// Spans returns a copy of the finished spans in completion order.
func (c *Collector) Spans() []SpanData {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]SpanData, len(c.finished))
	for i, s := range c.finished {
		s.Attributes = maps.Clone(s.Attributes)
		out[i] = s
	}

	return out
}

// Snapshot returns the export envelope for all spans finished so far.
func (c *Collector) Snapshot() TraceData {
	spans := c.Spans()

	c.mu.Lock()
	defer c.mu.Unlock()

	return TraceData{
		ServiceName:  c.serviceName,
		TraceID:      c.traceID,
		ParentSpanID: c.parentSpanID,
		Spans:        spans,
	}
}

// ExportJSON serializes the snapshot. It does not clear the registry.
func (c *Collector) ExportJSON() (string, error) {
	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to encode trace data: %w", err)
	}

	return string(data), nil
}

// ActiveCount returns the number of spans started but not yet ended.
func (c *Collector) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.active)
}

// Reset drops every finished and active span, the id table and the
// external context.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
}

func (c *Collector) resetLocked() {
	c.nextID = 0
	c.idMap = make(map[EphemeralID]uint64)
	c.active = make(map[EphemeralID]*activeSpan)
	c.finished = nil
	c.traceID = nil
	c.parentSpanID = nil
}

func formatID(id uint64) string {
	return fmt.Sprintf("%016x", id)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// SpanNames returns the sorted, de-duplicated names of finished spans.
func (c *Collector) SpanNames() []string {
	spans := c.Spans()
	names := make([]string, 0, len(spans))

	for _, s := range spans {
		names = append(names, s.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}
