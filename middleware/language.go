package middleware

import (
	"context"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/i18n"
)

// languageContextKey is used as a key for storing the request language in context.
type languageContextKey struct{}

// LanguageConfig configures the language negotiation middleware.
type LanguageConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Languages is the site language policy (required)
	Languages *i18n.Config
	// Extractor overrides how the language is derived from the request
	// Default: i18n.Config.LanguageFromRequest (path prefix, cookie, header)
	Extractor func(ctx handler.Context) string
}

// Language creates a language negotiation middleware with default
// configuration. It stores the negotiated language in the request context.
func Language[C handler.Context](languages *i18n.Config) handler.Middleware[C] {
	return LanguageWithConfig[C](LanguageConfig{Languages: languages})
}

// LanguageWithConfig creates a language negotiation middleware with custom
// configuration.
func LanguageWithConfig[C handler.Context](cfg LanguageConfig) handler.Middleware[C] {
	if cfg.Languages == nil {
		panic("language middleware: language policy is required")
	}

	if cfg.Extractor == nil {
		cfg.Extractor = func(ctx handler.Context) string {
			return cfg.Languages.LanguageFromRequest(ctx.Request())
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			lang := cfg.Extractor(ctx)
			if lang == "" || !cfg.Languages.IsSupported(lang) {
				lang = cfg.Languages.DefaultLanguage()
			}
			ctx.SetValue(languageContextKey{}, lang)

			return next(ctx)
		}
	}
}

// GetLanguage retrieves the negotiated request language from the context.
// Returns the language and a boolean indicating whether it was found.
// Works with any context.Context, not just handler.Context.
func GetLanguage(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(string)
	return lang, ok
}
