// Package logger builds the slog handlers used by goreg: a colored tint
// handler for terminals and a plain text handler otherwise.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/mouse-blink/goreg/internal/trace"
)

// Options controls New.
type Options struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	// Terminal forces the colored handler on or off. Nil detects it.
	Terminal *bool
	// Tracing wraps the handler so log records are copied onto spans.
	Tracing bool
}

// New builds a logger writing to opts.Output.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	terminal := isTerminal(out)
	if opts.Terminal != nil {
		terminal = *opts.Terminal
	}

	var h slog.Handler
	if terminal {
		h = newTerminalHandler(out)
	} else {
		h = newTextHandler(out)
	}

	if opts.Tracing {
		h = trace.NewLogHandler(h)
	}

	return slog.New(h)
}

func newTextHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level.lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				v, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(strings.ToLower(v.String()))
				}
			}
			return a
		},
	})
}

func newTerminalHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		AddSource: Level.Enabled(slog.LevelDebug),
		Level:     Level.lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
