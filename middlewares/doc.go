// Package middlewares provides the HTTP middleware used by the storefront.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID (or X-Correlation-ID) or
// generates a UUIDv7, stores it in the context and echoes it back. Combine
// it with RequestIDExtractor so every log line carries request_id:
//
//	app := storefront.New(
//	    storefront.WithLogger(cfg.Log, "storefront", middlewares.RequestIDExtractor()),
//	    storefront.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns a panic into a 500 {"error": "Internal server error"}
// and logs the stack. The *PanicError stays in the error chain.
//
// # CORS
//
// CORS lets the static site origin call /api/send-email from the browser.
// Preflight requests are answered with 204 before routing.
//
//	middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...))
//
// # I18n
//
// I18n resolves the visitor's language from ?lang=, the "lang" cookie or
// Accept-Language, and installs a translator with the matching currency
// format. Handlers then call c.T and c.FormatCurrency.
//
// # Metrics
//
// Metrics records request count and latency per matched route pattern.
package middlewares
