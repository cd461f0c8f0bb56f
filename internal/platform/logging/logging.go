// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContextOr(ctx, fallback).InfoContext(ctx, "submission accepted")
//
// Error logs carry the operation name, the session or field involved, and
// the full error chain via slog.Any("error", err).
//
// Field values are logged under the field name (slog.String(field, value)) so
// the redaction layer can mask password fields by key.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates a logger writing to w. level is parsed with ParseLevel and
// format is FormatText or FormatJSON (anything else means JSON). Debug
// loggers also record the source location. Sensitive attributes are
// redacted by every logger New returns.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a level name such as "debug" or "WARN" to a
// slog.Level. It reports false and returns info for unknown names.
func ParseLevel(level string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback. Components
// with their own logger use it so request-scoped attributes win when a
// request is in flight.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
