package page

import "github.com/google/uuid"

// Translation is the language-specific part of a page: its slug, display
// title, and the full absolute path (language prefix included) the page is
// served under in that language.
type Translation struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Page is one entry of the site's page tree. Pages are cheap value carriers
// loaded by a Store; the navigation layer never mutates them.
type Page struct {
	ID       uuid.UUID `json:"id"`
	ParentID uuid.UUID `json:"parent_id,omitempty"` // uuid.Nil for root pages
	Position int       `json:"position"`

	// InNavigation controls menu visibility. Pages outside navigation still
	// appear in the page tree so their children can link through them.
	InNavigation bool `json:"in_navigation"`

	// Translations keyed by language code.
	Translations map[string]Translation `json:"translations"`

	// Fallbacks is the language order consulted when an exact translation
	// is missing and fallback is requested. Populated by the Store from the
	// site language policy.
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// URL returns the page's absolute path for the given language. Without
// fallback it returns ErrNoTranslation when the exact translation is
// missing; with fallback it walks the Fallbacks order first and fails only
// when no translation exists at all.
func (p *Page) URL(lang string, fallback bool) (string, error) {
	if t, ok := p.Translations[lang]; ok {
		return t.Path, nil
	}
	if !fallback {
		return "", ErrNoTranslation
	}
	for _, l := range p.Fallbacks {
		if t, ok := p.Translations[l]; ok {
			return t.Path, nil
		}
	}
	return "", ErrNoTranslation
}

// Title returns the page title for the given language, falling back along
// the Fallbacks order. Returns "" when no translation exists.
func (p *Page) Title(lang string) string {
	if t, ok := p.Translations[lang]; ok {
		return t.Title
	}
	for _, l := range p.Fallbacks {
		if t, ok := p.Translations[l]; ok {
			return t.Title
		}
	}
	return ""
}

// HasTranslation reports whether the page carries an exact translation for
// the given language.
func (p *Page) HasTranslation(lang string) bool {
	_, ok := p.Translations[lang]
	return ok
}
