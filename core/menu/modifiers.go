package menu

import (
	"strings"

	"github.com/dmitrymomot/cmskit/core/handler"
)

// Attribute keys set by the built-in modifiers.
const (
	// AttrLevel holds the zero-based depth of a node, set by LevelModifier.
	AttrLevel = "level"
	// AttrSelected marks the node matching the request path.
	AttrSelected = "selected"
	// AttrAncestor marks ancestors of the selected node.
	AttrAncestor = "ancestor"
)

// LevelModifier annotates every node with its zero-based depth under
// AttrLevel. It runs on the pre-cut pass so levels reflect the full tree,
// not the cut-down rendering window.
type LevelModifier struct{}

// Modify implements Modifier.
func (LevelModifier) Modify(_ handler.Context, nodes []*Node, _, _ string, postCut, _ bool) []*Node {
	if postCut {
		return nodes
	}
	for _, root := range nodes {
		markLevel(root, 0)
	}
	return nodes
}

func markLevel(n *Node, level int) {
	n.SetAttribute(AttrLevel, level)
	for _, child := range n.Children {
		markLevel(child, level+1)
	}
}

// VisibilityModifier removes invisible nodes together with their subtrees.
// It runs on the post-cut pass so earlier modifiers still see the full
// forest and can flip visibility before anything is dropped.
type VisibilityModifier struct{}

// Modify implements Modifier.
func (VisibilityModifier) Modify(_ handler.Context, nodes []*Node, _, _ string, postCut, _ bool) []*Node {
	if !postCut {
		return nodes
	}
	return cutInvisible(nodes)
}

func cutInvisible(nodes []*Node) []*Node {
	out := nodes[:0]
	for _, n := range nodes {
		if !n.Visible {
			continue
		}
		n.Children = cutInvisible(n.Children)
		out = append(out, n)
	}
	return out
}

// SelectionModifier marks the node whose URL matches the request path with
// AttrSelected and each of its ancestors with AttrAncestor. Trailing slashes
// are ignored during comparison. It runs on the pre-cut pass.
type SelectionModifier struct{}

// Modify implements Modifier.
func (SelectionModifier) Modify(ctx handler.Context, nodes []*Node, _, _ string, postCut, _ bool) []*Node {
	if postCut {
		return nodes
	}

	path := normalizePath(ctx.Request().URL.Path)
	for _, n := range Flatten(nodes) {
		if normalizePath(n.URL) != path {
			continue
		}
		n.SetAttribute(AttrSelected, true)
		for _, ancestor := range n.Ancestors() {
			ancestor.SetAttribute(AttrAncestor, true)
		}
		break
	}
	return nodes
}

func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/")
}

// Breadcrumb returns the chain of nodes from the root down to the node whose
// URL matches path, or nil when no node matches. Invisible nodes are kept:
// breadcrumbs reflect position, not menu visibility.
func Breadcrumb(nodes []*Node, path string) []*Node {
	want := normalizePath(path)
	for _, n := range Flatten(nodes) {
		if normalizePath(n.URL) != want {
			continue
		}
		ancestors := n.Ancestors()
		chain := make([]*Node, 0, len(ancestors)+1)
		for i := len(ancestors) - 1; i >= 0; i-- {
			chain = append(chain, ancestors[i])
		}
		return append(chain, n)
	}
	return nil
}
