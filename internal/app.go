package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neonova/storefront/pkg/health"
	"github.com/neonova/storefront/pkg/logger"
	"github.com/neonova/storefront/pkg/metrics"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

const defaultMetricsPath = "/metrics"

// Fallback messages used when no custom handlers are configured.
const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal server error"
)

// App orchestrates the application lifecycle.
// It manages HTTP routing, middleware, and graceful shutdown.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	metrics                 *metrics.Metrics
	logger                  *slog.Logger
	metricsPath             string
	middlewares             []Middleware
	handlers                []Handler
}

// New creates a new application with the given options.
//
// Example:
//
//	app := storefront.New(
//	    storefront.WithMiddleware(middlewares.RequestID()),
//	    storefront.WithHandlers(handlers.NewSendEmail(relayCfg, sender)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.notFoundHandler == nil {
		a.notFoundHandler = func(Context) error { return ErrNotFound(msgNotFound) }
	}
	if a.methodNotAllowedHandler == nil {
		a.methodNotAllowedHandler = func(Context) error { return ErrMethodNotAllowed(msgMethodNotAllowed) }
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP lets the App be used directly as an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run starts the HTTP server and blocks until shutdown.
//
// Example:
//
//	err := app.Run(storefront.Address(":8080"), storefront.Logger(log))
func (a *App) Run(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	log := cfg.logger
	if log == nil {
		log = a.logger
	}

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         cfg.address,
		logger:          log,
		shutdownTimeout: cfg.shutdownTimeout,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
		onListen:        cfg.onListen,
	})
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath, health.ReadinessHandler(
			a.healthConfig.checks,
			health.WithLogger(a.logger),
		))
	}

	if a.metrics != nil {
		a.router.Method(http.MethodGet, a.metricsPath, a.metrics.Handler())
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError handles errors from handlers using the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr == nil || c.Written() {
			return
		}
	}
	_ = defaultErrorHandler(c, err)
}

// defaultErrorHandler writes {"error": message}. Messages of non-HTTP
// errors are never exposed.
func defaultErrorHandler(c Context, err error) error {
	if httpErr := AsHTTPError(err); httpErr != nil {
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed",
				slog.Int("status", httpErr.Code),
				slog.Any("error", httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, map[string]string{"error": httpErr.Message})
	}

	c.LogError("unhandled error", slog.Any("error", err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgInternal})
}

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if c.checks == nil {
			c.checks = make(health.Checks)
		}
		c.checks[name] = fn
	}
}
