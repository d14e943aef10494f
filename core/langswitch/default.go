package langswitch

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrymomot/cmskit/core/i18n"
	"github.com/dmitrymomot/cmskit/core/page"
	"github.com/dmitrymomot/cmskit/core/urlmap"
)

// DefaultChanger computes language-switch URLs when no custom changer is
// installed for the request. It tries three strategies in order:
//
//  1. the current page's translated URL, applying the "hide untranslated"
//     policy when the exact translation is missing;
//  2. re-reversing the currently matched view under the target language,
//     skipping the reserved generic page-rendering views;
//  3. the target language's page path plus the residual request path.
//
// Resolution failures are never surfaced: every miss falls through to the
// next strategy, and strategy 3 always produces a URL.
type DefaultChanger struct {
	req       *http.Request
	languages *i18n.Config
	page      *page.Page
	urls      *urlmap.Map

	appPathOnce sync.Once
	appPath     string
}

// ChangerOption configures a DefaultChanger.
type ChangerOption func(*DefaultChanger)

// WithPage attaches the current page, enabling the page-translation strategy.
func WithPage(p *page.Page) ChangerOption {
	return func(c *DefaultChanger) {
		c.page = p
	}
}

// WithURLMap attaches the URL map, enabling the view-reversal strategy.
func WithURLMap(m *urlmap.Map) ChangerOption {
	return func(c *DefaultChanger) {
		c.urls = m
	}
}

// NewDefaultChanger creates a changer for the given request under the given
// language policy.
func NewDefaultChanger(r *http.Request, languages *i18n.Config, opts ...ChangerOption) *DefaultChanger {
	c := &DefaultChanger{req: r, languages: languages}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Changer returns the changer as a plain function for Set.
func (c *DefaultChanger) Changer() Changer {
	return c.URL
}

// URL returns the equivalent URL of the current request in the target
// language.
func (c *DefaultChanger) URL(lang string) string {
	if c.page == nil && c.urls != nil {
		if url, ok := c.reverseView(lang); ok {
			return url
		}
	}
	return c.pagePath(lang) + c.residualPath()
}

// reverseView resolves the current path to a named view and rebuilds its URL
// under the target language prefix. The reserved page-rendering views are
// skipped: page URLs come from page translations, not route patterns.
func (c *DefaultChanger) reverseView(lang string) (string, bool) {
	_, rest := c.languages.SplitLanguagePrefix(c.req.URL.Path)

	match, err := c.urls.Resolve(rest)
	if err != nil {
		return "", false
	}
	if match.Name == urlmap.PageDetailsView || match.Name == urlmap.PageRootView {
		return "", false
	}

	path, err := c.urls.Reverse(match.Name, match.Params)
	if err != nil {
		return "", false
	}
	return joinPrefix(c.languages.LanguageRoot(lang), path), true
}

// pagePath returns the current page's path in the target language, or the
// language root when there is no page context. A missing exact translation
// resolves to the language root under the "hide untranslated" policy and to
// the fallback-language URL otherwise.
func (c *DefaultChanger) pagePath(lang string) string {
	if c.page == nil {
		return c.languages.LanguageRoot(lang)
	}

	url, err := c.page.URL(lang, false)
	if err == nil {
		return url
	}

	if c.languages.HideUntranslated(lang) && c.languages.Enabled() {
		return c.languages.LanguageRoot(lang)
	}

	url, err = c.page.URL(lang, true)
	if err != nil {
		return c.languages.LanguageRoot(lang)
	}
	return url
}

// residualPath is the part of the request path below the current page path
// (or language root): the application's own sub-URL, carried over unchanged
// when switching languages. Computed once per changer.
func (c *DefaultChanger) residualPath() string {
	c.appPathOnce.Do(func() {
		path := c.req.URL.Path
		current := c.languages.LanguageFromRequest(c.req)

		pagePath := c.pagePath(current)
		if pagePath != "" && strings.HasPrefix(path, pagePath) {
			c.appPath = path[len(pagePath):]
			return
		}
		c.appPath = strings.TrimPrefix(path, "/")
	})
	return c.appPath
}

// joinPrefix glues a language root ("/de/" or "/") onto a reversed path.
func joinPrefix(prefix, path string) string {
	if prefix == "/" {
		return path
	}
	return strings.TrimSuffix(prefix, "/") + path
}
