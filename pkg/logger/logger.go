// Package logger builds the storefront's structured JSON logger.
//
// Request-scoped attributes are added by ContextExtractor functions that run
// on every log call, so a request id stored in the context shows up on each
// line logged for that request:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "submission dispatched", "type", "quote")
//
// When a Sentry DSN is configured, warnings and errors are also shipped to
// Sentry. Without one the logger writes to stdout only.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config controls the log level and the optional Sentry sink.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Sentry SentryConfig
}

// New returns a JSON logger writing to stdout, teeing to Sentry when
// cfg.Sentry.DSN is set.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})

	var handler slog.Handler = stdout
	if cfg.Sentry.DSN != "" {
		sentryHandler, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			slog.New(stdout).Error("failed to initialize sentry", slog.String("error", err.Error()))
		} else {
			handler = newMultiHandler(stdout, sentryHandler)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

// NewWithWriter returns a JSON logger writing to w. Tests use it to inspect output.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
