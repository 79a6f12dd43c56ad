package middlewares_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var handled error

	app := newApp([]internal.Middleware{middlewares.Recover()}, func(r internal.Router) {
		r.GET("/panic", func(c internal.Context) error { panic("secret detail") })
		r.GET("/ok", func(c internal.Context) error { return c.String(http.StatusOK, "fine") })
	},
		internal.WithCustomLogger(logger.NewWithWriter(&buf, slog.LevelDebug)),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handled = err
			return errors.New("fall through to default")
		}),
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")

	pe, ok := middlewares.AsPanicError(handled)
	require.True(t, ok)
	assert.Equal(t, "secret detail", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Contains(t, buf.String(), "panic recovered")

	rec = do(app, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, "fine", rec.Body.String())
}

func TestRecover_Options(t *testing.T) {
	t.Parallel()

	var handled error
	app := newApp([]internal.Middleware{
		middlewares.Recover(
			middlewares.WithRecoverDisablePrintStack(),
			middlewares.WithRecoverMessage("Failed to send email"),
		),
	}, func(r internal.Router) {
		r.POST("/", func(c internal.Context) error { panic(errors.New("nil map")) })
	}, internal.WithErrorHandler(func(c internal.Context, err error) error {
		handled = err
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}))

	rec := do(app, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())

	pe, ok := middlewares.AsPanicError(handled)
	require.True(t, ok)
	assert.Nil(t, pe.Stack)
	assert.Equal(t, "panic: nil map", pe.Error())
}
