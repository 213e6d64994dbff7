// Package controller provides the terminal front ends that show comparison
// progress and the final summary.
package controller

import (
	m "github.com/mouse-blink/goreg/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCompare StartMode = iota
	ModeRender
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt func()
}

// WithCompareMode shows live progress while images are compared.
func WithCompareMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompare
	}
}

// WithRenderMode is used when reports are re-rendered from JSON and no
// comparison runs.
func WithRenderMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRender
	}
}

// WithInterrupt registers fn to be called when the user interrupts an
// interactive view. The terminal is in raw mode while the view runs, so
// Ctrl+C arrives as a key press rather than a signal.
func WithInterrupt(fn func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = fn
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeCompare}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying comparison progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish rendering
	DisplayDiscovery(detected m.DetectedImages, workers int)
	DisplayCompletedDiff(path m.Path, outcome m.DiffOutcome)
	DisplaySummary(report m.JSONReport, err error) error
}
