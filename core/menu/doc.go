// Package menu provides navigation-menu primitives for content-management
// systems: navigation nodes, menu sources, post-processing modifiers, and
// the pool that merges per-source node lists into linked trees.
//
// # Nodes and Sources
//
// A Menu source returns a flat list of nodes per request, expressing parent
// linkage only through ParentID (and ParentNamespace for cross-source
// parenting):
//
//	type sidebarMenu struct {
//		menu.Base
//	}
//
//	func (sidebarMenu) Namespace() string { return "sidebar" }
//
//	func (sidebarMenu) Nodes(ctx handler.Context) ([]*menu.Node, error) {
//		return []*menu.Node{
//			menu.NewNode("Home", "/", "home"),
//			menu.NewNode("About", "/about/", "about", menu.WithParent("home")),
//		}, nil
//	}
//
// # Pool
//
// The pool links nodes from all registered sources and applies modifiers in
// two passes, before and after root scoping and level cutting:
//
//	pool := menu.NewPool(
//		menu.WithModifiers(menu.LevelModifier{}, menu.SelectionModifier{}, menu.VisibilityModifier{}),
//	)
//	if err := pool.Register(sidebarMenu{}); err != nil {
//		log.Fatal(err)
//	}
//
//	roots, err := pool.Nodes(ctx, menu.WithLevels(2))
//
// Nodes are request-scoped: sources construct fresh instances on every call
// and the linked forest is discarded with the response. The only persistence
// is the optional Cache, which stores flat pre-link node lists.
//
// # Linkage Rules
//
// Parents must precede their children in a source's node list. A node whose
// parent cannot be found is dropped (along with everything parented under
// it) and logged; linkage errors degrade the menu instead of failing the
// request. After linking, Parent and Children always agree and trees are
// acyclic.
package menu
