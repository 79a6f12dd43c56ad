package middlewares_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	app := newApp([]internal.Middleware{middlewares.RequestID()}, func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.String(http.StatusOK, middlewares.GetRequestID(c))
		})
	})

	t.Run("generates uuid v7", func(t *testing.T) {
		t.Parallel()
		rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))
		id, err := uuid.Parse(rec.Body.String())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))
	})

	t.Run("reuses upstream id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "edge-123")
		rec := do(app, req)
		assert.Equal(t, "edge-123", rec.Body.String())
		assert.Equal(t, "edge-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("ignores oversized upstream id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		rec := do(app, req)
		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestRequestID_CustomGenerator(t *testing.T) {
	t.Parallel()

	app := newApp([]internal.Middleware{
		middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "fixed" })),
	}, func(r internal.Router) {
		r.GET("/", func(c internal.Context) error { return c.NoContent(http.StatusNoContent) })
	})

	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "fixed", rec.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo, middlewares.RequestIDExtractor())

	app := newApp([]internal.Middleware{middlewares.RequestID()}, func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			c.LogInfo("handled")
			return c.NoContent(http.StatusNoContent)
		})
	}, internal.WithCustomLogger(log))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	do(app, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
}
