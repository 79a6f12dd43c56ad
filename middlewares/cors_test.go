package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/middlewares"
)

func corsApp(opts ...middlewares.CORSOption) *internal.App {
	return newApp([]internal.Middleware{middlewares.CORS(opts...)}, func(r internal.Router) {
		r.POST("/api/send-email", func(c internal.Context) error {
			return c.JSON(http.StatusOK, map[string]bool{"success": true})
		})
	})
}

func TestCORS_Wildcard(t *testing.T) {
	t.Parallel()

	app := corsApp()

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
	req.Header.Set("Origin", "https://neonova.lt")
	rec := do(app, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Request-ID", rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	app := corsApp(middlewares.WithAllowOrigins("https://NeoNova.lt/"))

	req := httptest.NewRequest(http.MethodOptions, "/api/send-email", nil)
	req.Header.Set("Origin", "https://neonova.lt")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := do(app, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://neonova.lt", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Equal(t, "43200", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	app := corsApp(middlewares.WithAllowOrigins("https://neonova.lt"))

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := do(app, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOrigin(t *testing.T) {
	t.Parallel()

	rec := do(corsApp(), httptest.NewRequest(http.MethodPost, "/api/send-email", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
