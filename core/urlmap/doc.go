// Package urlmap provides named URL patterns with forward and reverse
// resolution. It is the host-framework facility the language switcher
// consumes: Resolve identifies which view rendered the current path, and
// Reverse rebuilds that view's URL so it can be re-prefixed for another
// language.
//
//	m := urlmap.New()
//	m.MustHandle("product-detail", "/products/{slug}/")
//	m.MustHandle("docs", "/docs/*")
//
//	match, _ := m.Resolve("/products/tea/")
//	// match.Name == "product-detail", match.Params["slug"] == "tea"
//
//	path, _ := m.Reverse("product-detail", map[string]string{"slug": "tea"})
//	// path == "/products/tea/"
//
// Patterns never include a language prefix; the i18n policy owns prefixes
// and strips them before resolution.
//
// The names PageDetailsView and PageRootView are reserved for generic page
// rendering and are skipped by the language switcher's view strategy.
package urlmap
