package menu

import "github.com/dmitrymomot/cmskit/core/handler"

// Modifier post-processes the merged navigation forest. The pool runs every
// registered modifier twice per build: once on the freshly linked forest
// (postCut false) and once after root scoping and level cutting (postCut
// true). Implementations decide which pass they act on.
//
// Modifiers receive the forest's root nodes and return the replacement
// roots; they may mutate nodes in place and return the input unchanged.
type Modifier interface {
	Modify(ctx handler.Context, nodes []*Node, namespace, rootID string, postCut, breadcrumb bool) []*Node
}

// ModifierFunc adapts a function to the Modifier interface.
type ModifierFunc func(ctx handler.Context, nodes []*Node, namespace, rootID string, postCut, breadcrumb bool) []*Node

// Modify invokes the wrapped function.
func (f ModifierFunc) Modify(ctx handler.Context, nodes []*Node, namespace, rootID string, postCut, breadcrumb bool) []*Node {
	return f(ctx, nodes, namespace, rootID, postCut, breadcrumb)
}

// Noop is the default Modifier: it returns its input unchanged on both
// passes.
type Noop struct{}

// Modify returns nodes unchanged.
func (Noop) Modify(_ handler.Context, nodes []*Node, _, _ string, _, _ bool) []*Node {
	return nodes
}
