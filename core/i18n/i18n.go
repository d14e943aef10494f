package i18n

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// defaultCookieName is the cookie consulted during language negotiation.
const defaultCookieName = "language"

// Config holds the site language policy: which languages exist, which one is
// the fallback, and whether pages without an exact translation are hidden.
// It is immutable after creation, making it safe for concurrent use.
type Config struct {
	// Default/fallback language, always first in languages.
	defaultLang string

	// Languages as given to WithLanguages, before ordering.
	rawLanguages []string

	// Pre-computed ordered language list.
	languages []string

	// Parsed tags, index-aligned with languages.
	tags []language.Tag

	// Matcher for Accept-Language negotiation.
	matcher language.Matcher

	// Whether untranslated content is hidden per language.
	hideDefault  bool
	hideOverride map[string]bool

	// Whether language-prefixed URLs are in effect. When disabled the site
	// is monolingual and all path helpers collapse to "/".
	enabled bool

	cookieName string
}

// Option configures the Config instance during construction.
type Option func(*Config) error

// New creates a new language policy with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		defaultLang:  DefaultLang,
		enabled:      true,
		cookieName:   defaultCookieName,
		hideOverride: make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	c.languages = c.buildLanguagesList()

	c.tags = make([]language.Tag, 0, len(c.languages))
	for _, lang := range c.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", lang, err)
		}
		c.tags = append(c.tags, tag)
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Config) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		c.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically. Ordering happens after all
// options apply, so WithLanguages and WithDefaultLanguage compose in any
// order.
func WithLanguages(langs ...string) Option {
	return func(c *Config) error {
		c.rawLanguages = langs
		return nil
	}
}

// WithHideUntranslated sets the site-wide "hide untranslated" policy: when
// active, content lacking an exact translation is hidden instead of being
// served in a fallback language.
func WithHideUntranslated(hide bool) Option {
	return func(c *Config) error {
		c.hideDefault = hide
		return nil
	}
}

// WithHideUntranslatedFor overrides the "hide untranslated" policy for a
// single language.
func WithHideUntranslatedFor(lang string, hide bool) Option {
	return func(c *Config) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		c.hideOverride[lang] = hide
		return nil
	}
}

// WithI18nEnabled toggles language-prefixed URLs. When disabled the site is
// treated as monolingual: negotiation always yields the default language and
// LanguageRoot returns "/" for every language.
func WithI18nEnabled(enabled bool) Option {
	return func(c *Config) error {
		c.enabled = enabled
		return nil
	}
}

// WithCookieName sets the cookie consulted during language negotiation.
func WithCookieName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return fmt.Errorf("cookie name cannot be empty")
		}
		c.cookieName = name
		return nil
	}
}

// DefaultLanguage returns the default language code.
func (c *Config) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns all configured languages. The default language is always
// first, followed by other languages sorted alphabetically. This is an O(1)
// operation as the list is pre-computed during construction.
func (c *Config) Languages() []string {
	return c.languages
}

// Enabled reports whether language-prefixed URLs are in effect.
func (c *Config) Enabled() bool {
	return c.enabled
}

// CookieName returns the cookie name consulted during negotiation.
func (c *Config) CookieName() string {
	return c.cookieName
}

// IsSupported reports whether lang is one of the configured languages.
func (c *Config) IsSupported(lang string) bool {
	return slices.Contains(c.languages, lang)
}

// HideUntranslated reports whether content without an exact translation in
// lang should be hidden rather than served in a fallback language.
func (c *Config) HideUntranslated(lang string) bool {
	if hide, ok := c.hideOverride[lang]; ok {
		return hide
	}
	return c.hideDefault
}

// Fallbacks returns the fallback language order for lang: the remaining
// configured languages with the default language first.
func (c *Config) Fallbacks(lang string) []string {
	out := make([]string, 0, len(c.languages))
	for _, l := range c.languages {
		if l != lang {
			out = append(out, l)
		}
	}
	return out
}

// buildLanguagesList builds the pre-computed list of languages: the default
// language first, the rest deduplicated and sorted alphabetically.
// Called once during construction after all options are applied.
func (c *Config) buildLanguagesList() []string {
	langSet := make(map[string]bool)
	for _, lang := range c.rawLanguages {
		if lang != "" && lang != c.defaultLang {
			langSet[lang] = true
		}
	}

	languages := make([]string, 0, len(langSet)+1)
	languages = append(languages, c.defaultLang)
	if len(langSet) > 0 {
		others := make([]string, 0, len(langSet))
		for lang := range langSet {
			others = append(others, lang)
		}
		sort.Strings(others)
		languages = append(languages, others...)
	}
	return languages
}
