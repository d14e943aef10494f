// Package middleware provides the HTTP middleware wiring the navigation
// toolkit into a request chain: language negotiation, current-page
// resolution, language switcher installation, and request logging.
//
// The intended order mirrors the data flow:
//
//	chain := []handler.Middleware[handler.Context]{
//		middleware.Logging[handler.Context](),
//		middleware.Language[handler.Context](languages),
//		middleware.CurrentPage[handler.Context](store),
//		middleware.LanguageSwitchWithConfig[handler.Context](middleware.LanguageSwitchConfig{
//			Languages: languages,
//			URLs:      urls,
//		}),
//	}
//
// Each middleware follows the same conventions: a zero-config constructor, a
// WithConfig variant with a Skip predicate, and a Get* accessor reading the
// stored value from any context.Context.
package middleware
