package menu_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/menu"
)

func testContext(t *testing.T, path string) handler.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	return handler.NewContext(httptest.NewRecorder(), req, nil)
}

// staticMenu returns a fixed node layout on every call, rebuilt fresh so the
// linker can mutate it.
type staticMenu struct {
	menu.Base
	build func() []*menu.Node
}

func (m staticMenu) Nodes(_ handler.Context) ([]*menu.Node, error) {
	return m.build(), nil
}

func mainMenu() staticMenu {
	return staticMenu{
		Base: menu.Base{NS: "main"},
		build: func() []*menu.Node {
			return []*menu.Node{
				menu.NewNode("Home", "/", "home"),
				menu.NewNode("Products", "/products/", "products"),
				menu.NewNode("Tea", "/products/tea/", "tea", menu.WithParent("products")),
				menu.NewNode("Coffee", "/products/coffee/", "coffee", menu.WithParent("products")),
				menu.NewNode("Beans", "/products/coffee/beans/", "beans", menu.WithParent("coffee")),
			}
		},
	}
}

func TestBaseNodesNotImplemented(t *testing.T) {
	t.Parallel()

	_, err := menu.Base{NS: "bare"}.Nodes(testContext(t, "/"))
	require.ErrorIs(t, err, menu.ErrNotImplemented)
}

func TestPoolRegister(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))
	require.ErrorIs(t, pool.Register(mainMenu()), menu.ErrMenuAlreadyRegistered)
	require.ErrorIs(t, pool.Register(staticMenu{}), menu.ErrEmptyNamespace)
}

func TestPoolNodesLinksTree(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)
	require.Len(t, roots, 2)

	home, products := roots[0], roots[1]
	assert.Equal(t, "home", home.ID)
	assert.Equal(t, "products", products.ID)
	assert.Equal(t, "main", products.Namespace)

	// Descendants of the common parent: all other subtree nodes, DFS order.
	desc := products.Descendants()
	require.Len(t, desc, 3)
	assert.Equal(t, "tea", desc[0].ID)
	assert.Equal(t, "coffee", desc[1].ID)
	assert.Equal(t, "beans", desc[2].ID)

	// Parent back-references agree with the children lists.
	for _, child := range desc {
		require.NotNil(t, child.Parent)
		assert.Contains(t, child.Parent.Children, child)
	}
	assert.Equal(t, []*menu.Node{products.Children[1], products}, desc[2].Ancestors())
}

func TestPoolNodesFromBaseFails(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(menu.Base{NS: "broken"}))

	_, err := pool.Nodes(testContext(t, "/"))
	require.ErrorIs(t, err, menu.ErrNotImplemented)
}

func TestPoolDropsOrphans(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(staticMenu{
		Base: menu.Base{NS: "main"},
		build: func() []*menu.Node {
			return []*menu.Node{
				menu.NewNode("Home", "/", "home"),
				menu.NewNode("Lost", "/lost/", "lost", menu.WithParent("no-such-id")),
				menu.NewNode("Lost child", "/lost/child/", "lost-child", menu.WithParent("lost")),
			}
		},
	}))

	roots, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)

	// The orphan and everything parented under it are gone.
	require.Len(t, roots, 1)
	assert.Equal(t, "home", roots[0].ID)
	assert.Empty(t, roots[0].Children)
}

func TestPoolCrossNamespaceParent(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))
	require.NoError(t, pool.Register(staticMenu{
		Base: menu.Base{NS: "shop"},
		build: func() []*menu.Node {
			return []*menu.Node{
				menu.NewNode("Specials", "/products/specials/", "specials",
					menu.WithParent("products"), menu.WithParentNamespace("main")),
			}
		},
	}))

	roots, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)

	var products *menu.Node
	for _, n := range roots {
		if n.ID == "products" {
			products = n
		}
	}
	require.NotNil(t, products)

	ids := make([]string, 0, len(products.Children))
	for _, c := range products.Children {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "specials")

	// The attached node keeps its own namespace.
	for _, c := range products.Children {
		if c.ID == "specials" {
			assert.Equal(t, "shop", c.Namespace)
		}
	}
}

func TestPoolNamespaceFilter(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))
	require.NoError(t, pool.Register(staticMenu{
		Base: menu.Base{NS: "footer"},
		build: func() []*menu.Node {
			return []*menu.Node{menu.NewNode("Imprint", "/imprint/", "imprint")}
		},
	}))

	roots, err := pool.Nodes(testContext(t, "/"), menu.WithNamespace("footer"))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "imprint", roots[0].ID)
}

func TestPoolRootID(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/"), menu.WithRootID("products"))
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "tea", roots[0].ID)
	assert.Equal(t, "coffee", roots[1].ID)

	// Re-rooted nodes are detached from the cut parent.
	assert.True(t, roots[0].IsRoot())

	missing, err := pool.Nodes(testContext(t, "/"), menu.WithRootID("nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestPoolLevels(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/"), menu.WithLevels(2))
	require.NoError(t, err)

	flat := menu.Flatten(roots)
	ids := make([]string, 0, len(flat))
	for _, n := range flat {
		ids = append(ids, n.ID)
	}
	// "beans" is on level 3 and must be cut.
	assert.Equal(t, []string{"home", "products", "tea", "coffee"}, ids)
}

func TestPoolModifierPasses(t *testing.T) {
	t.Parallel()

	type pass struct {
		postCut    bool
		breadcrumb bool
		count      int
	}
	var passes []pass

	pool := menu.NewPool(menu.WithModifiers(
		menu.ModifierFunc(func(_ handler.Context, nodes []*menu.Node, _, _ string, postCut, breadcrumb bool) []*menu.Node {
			passes = append(passes, pass{postCut, breadcrumb, len(menu.Flatten(nodes))})
			return nodes
		}),
	))
	require.NoError(t, pool.Register(mainMenu()))

	_, err := pool.Nodes(testContext(t, "/"), menu.WithLevels(1), menu.WithBreadcrumb())
	require.NoError(t, err)

	require.Len(t, passes, 2)
	assert.Equal(t, pass{postCut: false, breadcrumb: true, count: 5}, passes[0])
	assert.Equal(t, pass{postCut: true, breadcrumb: true, count: 2}, passes[1])
}

func TestNoopModifierLeavesInputUnchanged(t *testing.T) {
	t.Parallel()

	root, _, _, _, _ := buildTree()
	in := []*menu.Node{root}

	out := menu.Noop{}.Modify(testContext(t, "/"), in, "", "", false, false)
	assert.Equal(t, in, out)
	assert.Len(t, root.Children, 2)
}

// recordingCache counts cache operations and stores values in memory.
type recordingCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	gets   int
	sets   int
	misses int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{data: make(map[string][]byte)}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if data, ok := c.data[key]; ok {
		return data, nil
	}
	c.misses++
	return nil, menu.ErrCacheMiss
}

func (c *recordingCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestPoolCachesSourceNodes(t *testing.T) {
	t.Parallel()

	cache := newRecordingCache()
	calls := 0

	pool := menu.NewPool(menu.WithCache(cache, time.Minute))
	require.NoError(t, pool.Register(staticMenu{
		Base: menu.Base{NS: "main"},
		build: func() []*menu.Node {
			calls++
			return []*menu.Node{
				menu.NewNode("Home", "/", "home"),
				menu.NewNode("About", "/about/", "about", menu.WithParent("home")),
			}
		},
	}))

	first, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)
	second, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second build must be served from cache")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, cache.misses)

	// The cached round trip preserves linkage hints and structure.
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	require.Len(t, second[0].Children, 1)
	assert.Equal(t, "about", second[0].Children[0].ID)
	assert.True(t, second[0].Children[0].Visible)
}

func TestPoolCacheKeyFunc(t *testing.T) {
	t.Parallel()

	cache := newRecordingCache()
	pool := menu.NewPool(
		menu.WithCache(cache, time.Minute),
		menu.WithCacheKeyFunc(func(ctx handler.Context) string {
			return ctx.Request().URL.Path
		}),
	)
	require.NoError(t, pool.Register(mainMenu()))

	_, err := pool.Nodes(testContext(t, "/a/"))
	require.NoError(t, err)
	_, err = pool.Nodes(testContext(t, "/b/"))
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets, "distinct discriminators get distinct entries")
}
