package menu

import "github.com/dmitrymomot/cmskit/core/handler"

// Menu produces the navigation nodes of one source for a given request.
// Implementations must return freshly constructed nodes on every call: the
// pool's linker and modifiers mutate them in place.
type Menu interface {
	// Namespace identifies the source. It disambiguates nodes from
	// different menus when ParentNamespace is used for cross-source
	// parenting, and keys the source in the pool.
	Namespace() string

	// Nodes returns the flat node list for the request. Parent linkage is
	// expressed via ParentID/ParentNamespace only; Parent and Children are
	// populated later by the pool.
	Nodes(ctx handler.Context) ([]*Node, error)
}

// Base is an embeddable default Menu implementation. Its Nodes method
// returns ErrNotImplemented so a source registered without overriding it
// fails loudly on first use instead of rendering an empty menu.
type Base struct {
	NS string
}

// Namespace returns the configured namespace.
func (b Base) Namespace() string {
	return b.NS
}

// Nodes must be overridden by the embedding type.
func (b Base) Nodes(_ handler.Context) ([]*Node, error) {
	return nil, ErrNotImplemented
}

// MenuFunc adapts a function to the Menu interface.
type MenuFunc struct {
	NS string
	Fn func(ctx handler.Context) ([]*Node, error)
}

// Namespace returns the configured namespace.
func (m MenuFunc) Namespace() string {
	return m.NS
}

// Nodes invokes the wrapped function.
func (m MenuFunc) Nodes(ctx handler.Context) ([]*Node, error) {
	if m.Fn == nil {
		return nil, ErrNotImplemented
	}
	return m.Fn(ctx)
}
