package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/neonova/storefront/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists the site origins allowed to call the API.
	// "*" allows any origin. Trailing slashes and case are ignored.
	AllowOrigins []string

	// AllowMethods defaults to GET, POST and OPTIONS.
	AllowMethods []string

	// AllowHeaders defaults to Content-Type, Accept, Accept-Language and X-Request-ID.
	AllowHeaders []string

	// ExposeHeaders defaults to X-Request-ID so the form client can quote it.
	ExposeHeaders []string

	// MaxAge specifies how long preflight responses can be cached.
	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins. An empty list keeps the default "*".
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		if len(origins) > 0 {
			cfg.AllowOrigins = origins
		}
	}
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(duration time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = duration
	}
}

// CORS returns middleware that answers preflight requests with 204 and adds
// CORS headers for allowed origins. Requests from other origins pass through
// without CORS headers and the browser blocks them.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := &CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	origins := make([]string, 0, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		origins = append(origins, normalizeOrigin(o))
	}
	hasWildcard := slices.Contains(origins, "*")

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" {
				return next(c)
			}
			if !hasWildcard && !slices.Contains(origins, normalizeOrigin(origin)) {
				return next(c)
			}

			headers := c.Response().Header()
			headers.Add("Vary", "Origin")
			if hasWildcard {
				headers.Set("Access-Control-Allow-Origin", "*")
			} else {
				headers.Set("Access-Control-Allow-Origin", origin)
			}
			if exposeHeaders != "" {
				headers.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				headers.Add("Vary", "Access-Control-Request-Method")
				headers.Add("Vary", "Access-Control-Request-Headers")
				headers.Set("Access-Control-Allow-Methods", allowMethods)
				headers.Set("Access-Control-Allow-Headers", allowHeaders)
				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", maxAge)
				}
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}

func normalizeOrigin(o string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
}
