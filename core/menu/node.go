package menu

import "fmt"

// Node is one entry in a navigation tree.
//
// Menu sources construct nodes flat, with only ParentID/ParentNamespace
// linkage hints. The pool's linker populates Parent and Children; modifiers
// may mutate visibility, ordering, and attributes afterwards. Nodes live for
// a single request and are never persisted linked (Parent and Children are
// excluded from JSON so flat node lists survive a cache round trip).
type Node struct {
	Title           string         `json:"title"`
	URL             string         `json:"url"`
	ID              string         `json:"id"`
	ParentID        string         `json:"parent_id,omitempty"`
	ParentNamespace string         `json:"parent_namespace,omitempty"`
	Visible         bool           `json:"visible"`
	Attr            map[string]any `json:"attr,omitempty"`

	// Namespace identifies the menu source the node came from. Stamped by
	// the pool during collection; sources may leave it empty.
	Namespace string `json:"namespace,omitempty"`

	// Parent and Children are linker territory. Do not set them in menu
	// sources; the pool guarantees they agree after linking.
	Parent   *Node   `json:"-"`
	Children []*Node `json:"-"`
}

// NodeOption configures a Node during construction.
type NodeOption func(*Node)

// NewNode creates a visible node with the given title, URL, and id.
func NewNode(title, url, id string, opts ...NodeOption) *Node {
	n := &Node{
		Title:   title,
		URL:     url,
		ID:      id,
		Visible: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithParent links the node under a parent id from the same menu source.
func WithParent(parentID string) NodeOption {
	return func(n *Node) {
		n.ParentID = parentID
	}
}

// WithParentNamespace resolves the parent id against another menu source.
// Use it when ParentID is only unique within that source.
func WithParentNamespace(namespace string) NodeOption {
	return func(n *Node) {
		n.ParentNamespace = namespace
	}
}

// WithAttrs merges the given attributes into the node's attribute bag.
func WithAttrs(attrs map[string]any) NodeOption {
	return func(n *Node) {
		for k, v := range attrs {
			n.SetAttribute(k, v)
		}
	}
}

// Hidden marks the node as not visible.
func Hidden() NodeOption {
	return func(n *Node) {
		n.Visible = false
	}
}

// MenuTitle returns the display text for the node.
func (n *Node) MenuTitle() string {
	return n.Title
}

// AbsoluteURL returns the node's URL.
func (n *Node) AbsoluteURL() string {
	return n.URL
}

// Attribute returns the stored attribute value or nil when unset. Falsy
// stored values (empty string, zero) are returned as stored.
func (n *Node) Attribute(name string) any {
	if n.Attr == nil {
		return nil
	}
	return n.Attr[name]
}

// SetAttribute stores a value in the node's attribute bag.
func (n *Node) SetAttribute(name string, value any) {
	if n.Attr == nil {
		n.Attr = make(map[string]any)
	}
	n.Attr[name] = value
}

// Descendants returns all nodes in the subtree rooted at n, depth-first,
// excluding n itself. No cycle protection: the linker guarantees trees are
// acyclic.
func (n *Node) Descendants() []*Node {
	var nodes []*Node
	for _, child := range n.Children {
		nodes = append(nodes, child)
		nodes = append(nodes, child.Descendants()...)
	}
	return nodes
}

// Ancestors walks Parent references to the root, nearest-first, excluding n
// itself. Returns an empty slice for a root node.
func (n *Node) Ancestors() []*Node {
	var nodes []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		nodes = append(nodes, p)
	}
	return nodes
}

// Root returns the topmost ancestor of n, or n itself when unlinked.
func (n *Node) Root() *Node {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	return root
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("<NavigationNode: %s>", n.Title)
}

// Flatten returns all nodes of the forest in depth-first order, roots
// included.
func Flatten(roots []*Node) []*Node {
	var nodes []*Node
	for _, root := range roots {
		nodes = append(nodes, root)
		nodes = append(nodes, root.Descendants()...)
	}
	return nodes
}
