// Package page models the CMS page tree the navigation toolkit consumes: a
// Page entity with per-language translations, a Store interface for loading
// the tree, and a menu.Menu implementation feeding pages into the menu pool.
//
// A page's URL is language-specific. URL(lang, fallback) returns the exact
// translation's path, or walks the page's fallback language order when
// fallback is requested; ErrNoTranslation signals a missing translation and
// is how the "hide untranslated" policy is enforced by callers.
//
//	p := &page.Page{
//		ID: uuid.New(),
//		Translations: map[string]page.Translation{
//			"en": {Slug: "products", Title: "Products", Path: "/en/products/"},
//			"de": {Slug: "produkte", Title: "Produkte", Path: "/de/produkte/"},
//		},
//		Fallbacks:    []string{"en"},
//		InNavigation: true,
//	}
//
// MemoryStore serves tests and static sites; the integration/database
// packages provide Postgres- and MongoDB-backed stores.
package page
