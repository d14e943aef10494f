package langswitch_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/i18n"
	"github.com/dmitrymomot/cmskit/core/langswitch"
	"github.com/dmitrymomot/cmskit/core/page"
	"github.com/dmitrymomot/cmskit/core/urlmap"
)

func languages(t *testing.T, opts ...i18n.Option) *i18n.Config {
	t.Helper()

	cfg, err := i18n.New(append([]i18n.Option{i18n.WithLanguages("en", "de", "fr")}, opts...)...)
	require.NoError(t, err)
	return cfg
}

func bilingualPage() *page.Page {
	return &page.Page{
		ID: uuid.New(),
		Translations: map[string]page.Translation{
			"en": {Slug: "products", Title: "Products", Path: "/en/products/"},
			"de": {Slug: "produkte", Title: "Produkte", Path: "/de/produkte/"},
		},
		Fallbacks: []string{"en"},
	}
}

func TestDefaultChangerPageTranslated(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/en/products/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithPage(bilingualPage()))

	// The exact translation exists: its URL wins.
	assert.Equal(t, "/de/produkte/", changer.URL("de"))
	assert.Equal(t, "/en/products/", changer.URL("en"))
}

func TestDefaultChangerPageUntranslatedFallback(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/en/products/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithPage(bilingualPage()))

	// No French translation, hide-untranslated off: fallback-language URL.
	assert.Equal(t, "/en/products/", changer.URL("fr"))
}

func TestDefaultChangerPageUntranslatedHidden(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/en/products/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t, i18n.WithHideUntranslated(true)),
		langswitch.WithPage(bilingualPage()))

	// No French translation, hide-untranslated on: language root.
	assert.Equal(t, "/fr/", changer.URL("fr"))
	// Exact translations are unaffected by the policy.
	assert.Equal(t, "/de/produkte/", changer.URL("de"))
}

func TestDefaultChangerViewReversal(t *testing.T) {
	t.Parallel()

	urls := urlmap.New()
	urls.MustHandle("product-detail", "/products/{slug}/")

	req := httptest.NewRequest(http.MethodGet, "/en/products/tea/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithURLMap(urls))

	// The matched view is re-reversed under the target language prefix.
	assert.Equal(t, "/de/products/tea/", changer.URL("de"))
}

func TestDefaultChangerSkipsReservedViews(t *testing.T) {
	t.Parallel()

	urls := urlmap.New()
	urls.MustHandle(urlmap.PageDetailsView, "/{slug}/")

	req := httptest.NewRequest(http.MethodGet, "/en/imprint/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithURLMap(urls))

	// Reserved page views are never reversed; the residual-path fallback
	// carries the sub-path into the target language root.
	assert.Equal(t, "/de/imprint/", changer.URL("de"))
}

func TestDefaultChangerNoMatchFallsBack(t *testing.T) {
	t.Parallel()

	urls := urlmap.New()
	urls.MustHandle("orders", "/orders/")

	req := httptest.NewRequest(http.MethodGet, "/en/blog/2026/08/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithURLMap(urls))

	assert.Equal(t, "/de/blog/2026/08/", changer.URL("de"))
}

func TestDefaultChangerNoContextAtAll(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/en/anything/here/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t))

	assert.Equal(t, "/de/anything/here/", changer.URL("de"))
}

func TestDefaultChangerResidualPathBelowPage(t *testing.T) {
	t.Parallel()

	// An application mounted below a page: the residual path survives the
	// language switch, glued onto the translated page path.
	req := httptest.NewRequest(http.MethodGet, "/en/products/reviews/42/", nil)
	changer := langswitch.NewDefaultChanger(req, languages(t),
		langswitch.WithPage(bilingualPage()))

	assert.Equal(t, "/de/produkte/reviews/42/", changer.URL("de"))
	assert.Equal(t, "/en/products/reviews/42/", changer.URL("en"))
}

func TestDefaultChangerMonolingual(t *testing.T) {
	t.Parallel()

	cfg, err := i18n.New(i18n.WithI18nEnabled(false))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/products/tea/", nil)
	changer := langswitch.NewDefaultChanger(req, cfg)

	// Without language prefixes the changer degenerates to the current path.
	assert.Equal(t, "/products/tea/", changer.URL("de"))
}
