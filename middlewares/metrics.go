package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/pkg/metrics"
)

// unmatchedRoute labels requests that matched no route.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per
// method, route pattern and status. A nil m disables recording.
func Metrics(m *metrics.Metrics) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		if m == nil {
			return next
		}
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			if err != nil && !c.Written() {
				// The app error handler writes after this middleware returns.
				status = http.StatusInternalServerError
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					status = httpErr.Code
				}
			}

			m.ObserveRequest(c.Request().Method, routePattern(c), status, time.Since(start))
			return err
		}
	}
}

func routePattern(c internal.Context) string {
	rctx := chi.RouteContext(c.Request().Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
