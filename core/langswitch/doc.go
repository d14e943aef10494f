// Package langswitch computes language-switch URLs: given a target language,
// a Changer returns the equivalent URL of the current page or view in that
// language, for "switch language" links in templates.
//
// Views with language-specific slugs install a custom changer per request:
//
//	func productView(ctx handler.Context) handler.Response {
//		product := loadProduct(ctx.Param("slug"))
//		langswitch.Set(ctx, func(lang string) string {
//			return "/" + lang + "/products/" + product.Slug(lang) + "/"
//		})
//		...
//	}
//
// Templates retrieve it with FromContext. When no custom changer is set,
// DefaultChanger covers the common cases: translated page URLs (honoring the
// "hide untranslated" policy), re-reversed view URLs, and a page-path plus
// residual-path fallback. It never fails; every strategy miss falls through
// to the next.
package langswitch
