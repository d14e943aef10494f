package middleware

import (
	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/i18n"
	"github.com/dmitrymomot/cmskit/core/langswitch"
	"github.com/dmitrymomot/cmskit/core/urlmap"
)

// LanguageSwitchConfig configures the language switcher middleware.
type LanguageSwitchConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Languages is the site language policy (required)
	Languages *i18n.Config
	// URLs enables the view-reversal strategy when set
	URLs *urlmap.Map
}

// LanguageSwitch creates a middleware that installs a langswitch.Changer for
// every request. A changer already set earlier in the chain (or by a view
// via langswitch.Set, which overrides per request) is respected: the default
// is only installed when none is present.
//
// Run it after CurrentPage so the page-translation strategy sees the page.
func LanguageSwitch[C handler.Context](languages *i18n.Config) handler.Middleware[C] {
	return LanguageSwitchWithConfig[C](LanguageSwitchConfig{Languages: languages})
}

// LanguageSwitchWithConfig creates a language switcher middleware with
// custom configuration.
func LanguageSwitchWithConfig[C handler.Context](cfg LanguageSwitchConfig) handler.Middleware[C] {
	if cfg.Languages == nil {
		panic("language switch middleware: language policy is required")
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			if _, exists := langswitch.FromContext(ctx); !exists {
				opts := []langswitch.ChangerOption{}
				if p, ok := GetCurrentPage(ctx); ok {
					opts = append(opts, langswitch.WithPage(p))
				}
				if cfg.URLs != nil {
					opts = append(opts, langswitch.WithURLMap(cfg.URLs))
				}

				changer := langswitch.NewDefaultChanger(ctx.Request(), cfg.Languages, opts...)
				langswitch.Set(ctx, changer.Changer())
			}

			return next(ctx)
		}
	}
}
