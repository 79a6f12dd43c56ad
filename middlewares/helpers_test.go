package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/neonova/storefront/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// newApp builds an app with the given global middleware and routes.
func newApp(mw []internal.Middleware, fn func(r internal.Router), opts ...internal.Option) *internal.App {
	opts = append(opts,
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes(fn)),
	)
	return internal.New(opts...)
}

func do(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
