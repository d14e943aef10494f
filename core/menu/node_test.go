package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/core/menu"
)

// buildTree links a small tree by hand:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
func buildTree() (root, a, a1, a2, b *menu.Node) {
	root = menu.NewNode("Root", "/", "root")
	a = menu.NewNode("A", "/a/", "a")
	a1 = menu.NewNode("A1", "/a/1/", "a1")
	a2 = menu.NewNode("A2", "/a/2/", "a2")
	b = menu.NewNode("B", "/b/", "b")

	link := func(parent *menu.Node, children ...*menu.Node) {
		for _, c := range children {
			c.Parent = parent
			parent.Children = append(parent.Children, c)
		}
	}
	link(root, a, b)
	link(a, a1, a2)
	return root, a, a1, a2, b
}

func TestNodeDescendants(t *testing.T) {
	t.Parallel()

	root, a, a1, a2, b := buildTree()

	// Depth-first, excluding self, size = total - 1.
	assert.Equal(t, []*menu.Node{a, a1, a2, b}, root.Descendants())
	assert.Equal(t, []*menu.Node{a1, a2}, a.Descendants())
	assert.Empty(t, a1.Descendants())
}

func TestNodeAncestors(t *testing.T) {
	t.Parallel()

	root, a, a1, _, b := buildTree()

	// Nearest-first, excluding self.
	assert.Equal(t, []*menu.Node{a, root}, a1.Ancestors())
	assert.Equal(t, []*menu.Node{root}, b.Ancestors())
	assert.Empty(t, root.Ancestors())
}

func TestNodeRoot(t *testing.T) {
	t.Parallel()

	root, _, a1, _, _ := buildTree()

	assert.Same(t, root, a1.Root())
	assert.Same(t, root, root.Root())
	assert.True(t, root.IsRoot())
	assert.False(t, a1.IsRoot())
}

func TestNodeAttribute(t *testing.T) {
	t.Parallel()

	n := menu.NewNode("Home", "/", "home", menu.WithAttrs(map[string]any{
		"icon":  "house",
		"empty": "",
		"zero":  0,
	}))

	assert.Equal(t, "house", n.Attribute("icon"))
	assert.Nil(t, n.Attribute("missing"))

	// Falsy stored values are returned as stored, not collapsed to nil.
	assert.Equal(t, "", n.Attribute("empty"))
	assert.Equal(t, 0, n.Attribute("zero"))
}

func TestNodeAttributeOnEmptyBag(t *testing.T) {
	t.Parallel()

	n := menu.NewNode("Home", "/", "home")
	assert.Nil(t, n.Attribute("anything"))

	n.SetAttribute("k", "v")
	assert.Equal(t, "v", n.Attribute("k"))
}

func TestNewNodeOptions(t *testing.T) {
	t.Parallel()

	n := menu.NewNode("Child", "/child/", "child",
		menu.WithParent("root"),
		menu.WithParentNamespace("main"),
		menu.Hidden(),
	)

	assert.Equal(t, "root", n.ParentID)
	assert.Equal(t, "main", n.ParentNamespace)
	assert.False(t, n.Visible)

	visible := menu.NewNode("Top", "/", "top")
	assert.True(t, visible.Visible)
}

func TestNodeAccessors(t *testing.T) {
	t.Parallel()

	n := menu.NewNode("Products", "/products/", "products")
	assert.Equal(t, "Products", n.MenuTitle())
	assert.Equal(t, "/products/", n.AbsoluteURL())
	assert.Equal(t, "<NavigationNode: Products>", n.String())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	root, a, a1, a2, b := buildTree()
	other := menu.NewNode("Other", "/other/", "other")

	flat := menu.Flatten([]*menu.Node{root, other})
	require.Equal(t, []*menu.Node{root, a, a1, a2, b, other}, flat)
}
