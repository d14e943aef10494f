package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LanguageRoot returns the root path for a language: "/de/" with i18n
// enabled, "/" otherwise.
func (c *Config) LanguageRoot(lang string) string {
	if !c.enabled {
		return "/"
	}
	return "/" + lang + "/"
}

// SplitLanguagePrefix splits a request path into its language prefix and the
// remainder. The remainder always starts with "/". When the path carries no
// supported language prefix, or i18n is disabled, lang is empty and rest is
// the path unchanged.
func (c *Config) SplitLanguagePrefix(path string) (lang, rest string) {
	if !c.enabled {
		return "", path
	}

	trimmed := strings.TrimPrefix(path, "/")
	seg, remainder, _ := strings.Cut(trimmed, "/")
	if !c.IsSupported(seg) {
		return "", path
	}
	return seg, "/" + remainder
}

// LanguageFromRequest negotiates the request language: URL path prefix first,
// then the language cookie, then the Accept-Language header. Falls back to
// the default language. With i18n disabled it always returns the default.
func (c *Config) LanguageFromRequest(r *http.Request) string {
	if !c.enabled {
		return c.defaultLang
	}

	if lang, _ := c.SplitLanguagePrefix(r.URL.Path); lang != "" {
		return lang
	}

	if cookie, err := r.Cookie(c.cookieName); err == nil && c.IsSupported(cookie.Value) {
		return cookie.Value
	}

	if lang := c.MatchAcceptLanguage(r.Header.Get("Accept-Language")); lang != "" {
		return lang
	}

	return c.defaultLang
}

// MatchAcceptLanguage matches an Accept-Language header value against the
// configured languages and returns the best match, or "" when the header is
// empty or nothing matches.
func (c *Config) MatchAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return ""
	}

	_, index, conf := c.matcher.Match(desired...)
	if conf == language.No {
		return ""
	}
	return c.languages[index]
}
