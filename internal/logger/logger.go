package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-certform/internal/config"
)

type options struct {
	out   io.Writer
	level string
}

// Option customises New.
type Option func(*options)

// WithWriter sends log output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel overrides the environment's default level. Unknown names are
// ignored.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

// New returns a logger for env: local is pretty at debug, dev is JSON at
// debug, prod is JSON at info.
func New(env string, opts ...Option) *slog.Logger {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	level := slog.LevelDebug
	if env == config.EnvProd {
		level = slog.LevelInfo
	}
	if parsed, ok := ParseLevel(o.level); ok {
		level = parsed
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch env {
	case config.EnvDev, config.EnvProd:
		return slog.New(slog.NewJSONHandler(o.out, handlerOpts))
	default:
		return slog.New(NewPrettyHandler(o.out, handlerOpts))
	}
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
