// Package config loads goreg settings from an optional .goreg.yaml and
// merges explicitly set command line flags on top.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/goreg/internal/logger"
)

// Flag names shared by the command line and the config file keys.
const (
	FlagReport            = "report"
	FlagJSON              = "json"
	FlagJUnit             = "junit"
	FlagURLPrefix         = "urlPrefix"
	FlagMatchingThreshold = "matchingThreshold"
	FlagThresholdRate     = "thresholdRate"
	FlagThresholdPixel    = "thresholdPixel"
	FlagConcurrency       = "concurrency"
	FlagEnableAntialias   = "enableAntialias"
	FlagUpdate            = "update"
	FlagExtendedErrors    = "extendedErrors"
	FlagIgnoreChange      = "ignoreChange"
	FlagTracing           = "tracing"
	FlagTraceOutput       = "traceOutput"
	FlagTraceID           = "traceId"
	FlagParentSpanID      = "parentSpanId"
	FlagLogLevel          = "logLevel"
)

// Defaults.
const (
	DefaultReport      = "./report.html"
	DefaultJSON        = "./reg.json"
	DefaultTraceOutput = "./trace.json"
	DefaultConcurrency = 4
	DefaultLogLevel    = "info"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// localConfigFiles are looked up in the working directory, in order.
var localConfigFiles = []string{".goreg.yaml", ".goreg.yml"}

// Config holds every tunable of a goreg run.
type Config struct {
	Report            string   `yaml:"report"`
	JSON              string   `yaml:"json"`
	JUnit             string   `yaml:"junit"`
	URLPrefix         string   `yaml:"urlPrefix"`
	MatchingThreshold float64  `yaml:"matchingThreshold"`
	ThresholdRate     *float64 `yaml:"thresholdRate"`
	ThresholdPixel    *uint64  `yaml:"thresholdPixel"`
	Concurrency       int      `yaml:"concurrency"`
	EnableAntialias   bool     `yaml:"enableAntialias"`
	Update            bool     `yaml:"update"`
	ExtendedErrors    bool     `yaml:"extendedErrors"`
	IgnoreChange      bool     `yaml:"ignoreChange"`
	Tracing           bool     `yaml:"tracing"`
	TraceOutput       string   `yaml:"traceOutput"`
	TraceID           string   `yaml:"traceId"`
	ParentSpanID      string   `yaml:"parentSpanId"`
	LogLevel          string   `yaml:"logLevel"`

	// Source is the file the configuration was read from, if any.
	Source string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Report:      DefaultReport,
		JSON:        DefaultJSON,
		TraceOutput: DefaultTraceOutput,
		Concurrency: DefaultConcurrency,
		LogLevel:    DefaultLogLevel,
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// searches the working directory and then $XDG_CONFIG_HOME/goreg; finding
// nothing is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	// #nosec G304 - path is the user supplied config location
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Source = path

	return cfg, nil
}

func findConfigPath() string {
	for _, name := range localConfigFiles {
		if fileExists(name) {
			return name
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		configHome = filepath.Join(home, ".config")
	}

	if p := filepath.Join(configHome, "goreg", "config.yaml"); fileExists(p) {
		return p
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// RegisterFlags declares every configuration flag on flags with the built-in
// defaults.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()

	flags.StringP(FlagReport, "R", d.Report, "path of the HTML report")
	flags.StringP(FlagJSON, "J", d.JSON, "path of the JSON report")
	flags.String(FlagJUnit, "", "path of the JUnit XML report")
	flags.StringP(FlagURLPrefix, "P", "", "URL prefix for the image directories in the JSON report")
	flags.Float64P(FlagMatchingThreshold, "M", 0, "per pixel color distance threshold (0 to 1)")
	flags.Float64P(FlagThresholdRate, "T", 0, "tolerated rate of differing pixels (0 to 1)")
	flags.Uint64P(FlagThresholdPixel, "S", 0, "tolerated number of differing pixels")
	flags.IntP(FlagConcurrency, "C", d.Concurrency, "number of images compared in parallel")
	flags.BoolP(FlagEnableAntialias, "A", false, "ignore anti-aliased pixels")
	flags.BoolP(FlagUpdate, "U", false, "replace expected images with the actual ones")
	flags.BoolP(FlagExtendedErrors, "E", false, "report new and deleted images as JUnit failures")
	flags.BoolP(FlagIgnoreChange, "I", false, "exit successfully even when changes are found")
	flags.Bool(FlagTracing, false, "record execution spans")
	flags.String(FlagTraceOutput, d.TraceOutput, "path of the exported trace JSON")
	flags.String(FlagTraceID, "", "external trace id attached to the exported trace")
	flags.String(FlagParentSpanID, "", "external parent span id attached to the exported trace")
	flags.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
}

// ApplyFlags copies every flag explicitly set on flags into c.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) error {
	var errs []error

	str := func(name string, dst *string) {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			errs = append(errs, err)
			*dst = v
		}
	}

	boolean := func(name string, dst *bool) {
		if flags.Changed(name) {
			v, err := flags.GetBool(name)
			errs = append(errs, err)
			*dst = v
		}
	}

	str(FlagReport, &c.Report)
	str(FlagJSON, &c.JSON)
	str(FlagJUnit, &c.JUnit)
	str(FlagURLPrefix, &c.URLPrefix)
	str(FlagTraceOutput, &c.TraceOutput)
	str(FlagTraceID, &c.TraceID)
	str(FlagParentSpanID, &c.ParentSpanID)
	str(FlagLogLevel, &c.LogLevel)

	boolean(FlagEnableAntialias, &c.EnableAntialias)
	boolean(FlagUpdate, &c.Update)
	boolean(FlagExtendedErrors, &c.ExtendedErrors)
	boolean(FlagIgnoreChange, &c.IgnoreChange)
	boolean(FlagTracing, &c.Tracing)

	if flags.Changed(FlagMatchingThreshold) {
		v, err := flags.GetFloat64(FlagMatchingThreshold)
		errs = append(errs, err)
		c.MatchingThreshold = v
	}

	if flags.Changed(FlagThresholdRate) {
		v, err := flags.GetFloat64(FlagThresholdRate)
		errs = append(errs, err)
		c.ThresholdRate = &v
	}

	if flags.Changed(FlagThresholdPixel) {
		v, err := flags.GetUint64(FlagThresholdPixel)
		errs = append(errs, err)
		c.ThresholdPixel = &v
	}

	if flags.Changed(FlagConcurrency) {
		v, err := flags.GetInt(FlagConcurrency)
		errs = append(errs, err)
		c.Concurrency = v
	}

	return errors.Join(errs...)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.MatchingThreshold < 0 || c.MatchingThreshold > 1 {
		errs = append(errs, fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalid, FlagMatchingThreshold, c.MatchingThreshold))
	}

	if c.ThresholdRate != nil && (*c.ThresholdRate < 0 || *c.ThresholdRate > 1) {
		errs = append(errs, fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalid, FlagThresholdRate, *c.ThresholdRate))
	}

	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, FlagConcurrency, c.Concurrency))
	}

	if c.JSON == "" {
		errs = append(errs, fmt.Errorf("%w: %s must not be empty", ErrInvalid, FlagJSON))
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("%w: %s must be one of debug, info, warn, error, got %q", ErrInvalid, FlagLogLevel, c.LogLevel))
	}

	if _, err := c.ParseURLPrefix(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseURLPrefix parses URLPrefix. An empty prefix yields nil.
func (c *Config) ParseURLPrefix() (*url.URL, error) {
	if c.URLPrefix == "" {
		return nil, nil
	}

	u, err := url.Parse(c.URLPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, FlagURLPrefix, err)
	}

	return u, nil
}
