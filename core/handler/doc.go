// Package handler defines the request-context abstraction the navigation
// toolkit is built against. It keeps the library router-agnostic: any host
// framework whose context exposes the request, the response writer, path
// parameters, and request-scoped value storage can drive the menu pool and
// the middleware in this module.
//
// # Core Types
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Default Context
//
// NewContext adapts a plain http.ResponseWriter/*http.Request pair:
//
//	func(w http.ResponseWriter, r *http.Request) {
//		ctx := handler.NewContext(w, r, nil)
//		nodes, err := pool.Nodes(ctx)
//		...
//	}
//
// Custom implementations only need to satisfy the Context interface; see the
// middleware package tests for a minimal example.
package handler
