package middleware

import (
	"context"
	"errors"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/page"
)

// currentPageContextKey is used as a key for storing the current page in context.
type currentPageContextKey struct{}

// CurrentPageConfig configures the current-page middleware.
type CurrentPageConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Store is the page store to resolve against (required)
	Store page.Store
}

// CurrentPage creates a middleware that resolves the page served under the
// request path and stores it in context. Requests without a matching page
// pass through without a page; that is not an error, most view URLs are not
// pages.
func CurrentPage[C handler.Context](store page.Store) handler.Middleware[C] {
	return CurrentPageWithConfig[C](CurrentPageConfig{Store: store})
}

// CurrentPageWithConfig creates a current-page middleware with custom
// configuration.
func CurrentPageWithConfig[C handler.Context](cfg CurrentPageConfig) handler.Middleware[C] {
	if cfg.Store == nil {
		panic("current page middleware: page store is required")
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			p, err := cfg.Store.ByPath(ctx, ctx.Request().URL.Path)
			switch {
			case err == nil:
				ctx.SetValue(currentPageContextKey{}, p)
			case errors.Is(err, page.ErrPageNotFound):
				// Not a page URL.
			default:
				// Store failures degrade to "no page context"; navigation
				// helpers must keep working when the page backend is down.
			}

			return next(ctx)
		}
	}
}

// GetCurrentPage retrieves the resolved page from the context.
// Returns the page and a boolean indicating whether it was found.
// Works with any context.Context, not just handler.Context.
func GetCurrentPage(ctx context.Context) (*page.Page, bool) {
	p, ok := ctx.Value(currentPageContextKey{}).(*page.Page)
	return p, ok
}
