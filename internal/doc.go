// Package internal provides the core types and implementation of the
// storefront HTTP kernel.
//
// This package is internal and should not be used directly. Import
// "github.com/neonova/storefront" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates routing, middleware and graceful shutdown
//   - Context: Request/response access, JSON helpers, logging and translation
//   - Router: Interface handlers use to declare routes
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to the mail
// providers:
//
//	func (h *SendEmail) handle(c storefront.Context) error {
//	    return mailer.Dispatch(c, h.sender, email)
//	}
//
// # Errors
//
// Handlers return errors instead of writing them. An *HTTPError carries the
// status and the user-facing message; anything else becomes a 500 with a
// generic message. Either way the body is {"error": "..."}.
//
//	return storefront.ErrBadRequest("Missing required fields")
//
// Unknown routes answer 404 {"error":"Not found"} and wrong methods answer
// 405 {"error":"Method not allowed"} unless custom handlers are set.
//
// # Running
//
// Run blocks until SIGINT/SIGTERM or the base context is cancelled, then
// shuts the server down within the shutdown timeout and runs the shutdown
// hooks in registration order. Hook errors are joined.
package internal
