package logger

import (
	"log/slog"
	"strings"
)

// Level is the process-wide log level shared by every handler built here.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName accepts the names ParseLevel does. Unknown names leave the
// level unchanged.
func (l *level) SetByName(name string) {
	if lvl, ok := ParseLevel(name); ok {
		l.lvl.Set(lvl)
	}
}

// ParseLevel maps a case-insensitive level name to its slog level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "err", "error":
		return slog.LevelError, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	}

	return 0, false
}
