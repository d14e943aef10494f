package langswitch

import (
	"context"

	"github.com/dmitrymomot/cmskit/core/handler"
)

// Changer maps a target language to the URL of the current page or view in
// that language. Changers are total: they always return a usable URL, never
// an error.
type Changer func(lang string) string

// changerContextKey is used as a key for storing the changer in request context.
type changerContextKey struct{}

// Set stores a changer request-scoped. Views with language-specific slugs
// install their own changer here so the language switcher links to the
// correct translated URL.
func Set(ctx handler.Context, fn Changer) {
	ctx.SetValue(changerContextKey{}, fn)
}

// FromContext retrieves the changer stored for the request.
// Returns the changer and a boolean indicating whether it was found.
// Works with any context.Context, not just handler.Context.
func FromContext(ctx context.Context) (Changer, bool) {
	fn, ok := ctx.Value(changerContextKey{}).(Changer)
	return fn, ok
}

// Middleware installs a fixed changer for every request passing through it,
// the declarative counterpart of calling Set inside a handler.
func Middleware[C handler.Context](fn Changer) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			Set(ctx, fn)
			return next(ctx)
		}
	}
}
