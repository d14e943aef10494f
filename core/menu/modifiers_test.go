package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/menu"
)

func TestLevelModifier(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool(menu.WithModifiers(menu.LevelModifier{}))
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)

	levels := make(map[string]any)
	for _, n := range menu.Flatten(roots) {
		levels[n.ID] = n.Attribute(menu.AttrLevel)
	}
	assert.Equal(t, map[string]any{
		"home":     0,
		"products": 0,
		"tea":      1,
		"coffee":   1,
		"beans":    2,
	}, levels)
}

func TestVisibilityModifier(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool(menu.WithModifiers(menu.VisibilityModifier{}))
	require.NoError(t, pool.Register(staticMenu{
		Base: menu.Base{NS: "main"},
		build: func() []*menu.Node {
			return []*menu.Node{
				menu.NewNode("Home", "/", "home"),
				menu.NewNode("Secret", "/secret/", "secret", menu.Hidden()),
				menu.NewNode("Nested", "/secret/nested/", "nested", menu.WithParent("secret")),
				menu.NewNode("About", "/about/", "about", menu.WithParent("home")),
			}
		},
	}))

	roots, err := pool.Nodes(testContext(t, "/"))
	require.NoError(t, err)

	ids := make([]string, 0, len(menu.Flatten(roots)))
	for _, n := range menu.Flatten(roots) {
		ids = append(ids, n.ID)
	}
	// The invisible subtree is gone, visible nodes survive.
	assert.Equal(t, []string{"home", "about"}, ids)
}

func TestSelectionModifier(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool(menu.WithModifiers(menu.SelectionModifier{}))
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/products/coffee/beans/"))
	require.NoError(t, err)

	byID := make(map[string]*menu.Node)
	for _, n := range menu.Flatten(roots) {
		byID[n.ID] = n
	}

	assert.Equal(t, true, byID["beans"].Attribute(menu.AttrSelected))
	assert.Equal(t, true, byID["coffee"].Attribute(menu.AttrAncestor))
	assert.Equal(t, true, byID["products"].Attribute(menu.AttrAncestor))
	assert.Nil(t, byID["tea"].Attribute(menu.AttrAncestor))
	assert.Nil(t, byID["home"].Attribute(menu.AttrSelected))
}

func TestBreadcrumb(t *testing.T) {
	t.Parallel()

	pool := menu.NewPool()
	require.NoError(t, pool.Register(mainMenu()))

	roots, err := pool.Nodes(testContext(t, "/"), menu.WithBreadcrumb())
	require.NoError(t, err)

	chain := menu.Breadcrumb(roots, "/products/coffee/beans/")
	require.Len(t, chain, 3)
	assert.Equal(t, "products", chain[0].ID)
	assert.Equal(t, "coffee", chain[1].ID)
	assert.Equal(t, "beans", chain[2].ID)

	assert.Nil(t, menu.Breadcrumb(roots, "/nope/"))
}

func TestCutLevelsNoop(t *testing.T) {
	t.Parallel()

	root, _, _, _, _ := buildTree()
	roots := menu.CutLevels([]*menu.Node{root}, 0)
	assert.Len(t, menu.Flatten(roots), 5)
}
