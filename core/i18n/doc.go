// Package i18n holds the site language policy consumed by the navigation
// toolkit: the configured language list, the default/fallback language, the
// per-language "hide untranslated" rule, and request language negotiation.
//
// All configuration is done at construction time, making instances immutable
// and safe for concurrent use:
//
//	cfg, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en", "de", "fr"),
//		i18n.WithHideUntranslated(true),
//		i18n.WithHideUntranslatedFor("de", false),
//	)
//
// # Language Negotiation
//
// LanguageFromRequest negotiates in fixed order: URL path prefix ("/de/..."),
// language cookie, Accept-Language header (matched with golang.org/x/text),
// then the default language.
//
// # Monolingual Sites
//
// With i18n.WithI18nEnabled(false) the policy collapses: negotiation always
// yields the default language, LanguageRoot returns "/", and path prefixes
// are never stripped. This mirrors running the host site without
// language-prefixed URLs.
//
// # Environment
//
// FromEnv reads NAV_DEFAULT_LANGUAGE, NAV_LANGUAGES, NAV_I18N_ENABLED,
// NAV_HIDE_UNTRANSLATED, and NAV_LANGUAGE_COOKIE via core/config.
package i18n
