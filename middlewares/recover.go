package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/neonova/storefront/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	Message           string // Client-facing message (default: "Internal server error")
	StackSize         int    // Max stack trace size (default: 4096)
	DisablePrintStack bool   // Disable stack trace in logs
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// WithRecoverMessage sets the message clients receive after a panic.
func WithRecoverMessage(msg string) RecoverOption {
	return func(cfg *RecoverConfig) {
		if msg != "" {
			cfg.Message = msg
		}
	}
}

// Recover returns middleware that recovers from panics.
// The panic is logged and returned as a 500 HTTPError wrapping a *PanicError,
// so the client gets {"error": "..."} and never the panic value.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		Message:   "Internal server error",
		StackSize: DefaultStackSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				pe := &PanicError{Value: r}
				attrs := []any{slog.Any("panic", r)}
				if !cfg.DisablePrintStack {
					stack := make([]byte, cfg.StackSize)
					pe.Stack = stack[:runtime.Stack(stack, false)]
					attrs = append(attrs, slog.String("stack", string(pe.Stack)))
				}
				c.LogError("panic recovered", attrs...)

				err = internal.ErrInternal(cfg.Message, internal.WithError(pe))
			}()

			return next(c)
		}
	}
}
