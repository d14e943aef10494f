package langswitch_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/langswitch"
)

func testContext(t *testing.T, path string) handler.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	return handler.NewContext(httptest.NewRecorder(), req, nil)
}

func TestSetAndFromContext(t *testing.T) {
	t.Parallel()

	ctx := testContext(t, "/en/products/tea/")

	_, ok := langswitch.FromContext(ctx)
	assert.False(t, ok)

	langswitch.Set(ctx, func(lang string) string {
		return "/" + lang + "/products/tee/"
	})

	fn, ok := langswitch.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "/de/products/tee/", fn("de"))
}

func TestMiddlewareInstallsChanger(t *testing.T) {
	t.Parallel()

	changer := langswitch.Changer(func(lang string) string {
		return "/" + lang + "/custom/"
	})

	var got langswitch.Changer
	h := langswitch.Middleware[handler.Context](changer)(func(ctx handler.Context) handler.Response {
		got, _ = langswitch.FromContext(ctx)
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	})

	ctx := testContext(t, "/en/")
	resp := h(ctx)
	require.NoError(t, resp(ctx.ResponseWriter(), ctx.Request()))

	require.NotNil(t, got)
	assert.Equal(t, "/fr/custom/", got("fr"))
}
