// Package storefront is the HTTP kernel of the NeoNova LED-sign website.
//
// It wires a chi router, JSON error responses, health probes, Prometheus
// metrics and graceful shutdown behind a small handler API. The business
// endpoints live in the handlers package; the form client that posts to them
// lives in pkg/form.
//
// # Quick Start
//
//	app := storefront.New(
//	    storefront.WithLogger(cfg.Log, "storefront", middlewares.RequestIDExtractor()),
//	    storefront.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithCORSOrigins(cfg.AllowedOrigins...)),
//	    ),
//	    storefront.WithHandlers(handlers.NewSendEmail(relayCfg, sender)),
//	)
//
//	if err := app.Run(storefront.Address(cfg.Address)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type SendEmail struct{ sender mailer.Sender }
//
//	func (h *SendEmail) Routes(r storefront.Router) {
//	    r.POST("/api/send-email", h.handle)
//	}
//
// # Errors
//
// Handlers return errors. An [HTTPError] becomes {"error": message} with its
// status; any other error becomes 500 {"error": "Internal server error"}.
package storefront
