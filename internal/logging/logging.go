package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Common attribute keys.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldPath      = "path"
	FieldError     = "error"
)

// Component names.
const (
	ComponentCLI     = "cli"
	ComponentSession = "session"
	ComponentStorage = "storage"
)

// ParseLevel maps a config string to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything. Useful as a nil default.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// For returns l tagged with a component name.
func For(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(FieldComponent, component)
}
