package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/logger"
)

// cacheKeyPrefix namespaces pool entries in shared cache backends.
const cacheKeyPrefix = "nav:menu:"

// Pool is the menu registry and tree builder. It collects node lists from
// every registered menu source, links them into a forest via
// ParentID/ParentNamespace, and runs every registered modifier twice per
// build: before and after root scoping and level cutting.
//
// Registration is guarded by a mutex but is meant for startup; builds only
// take the read lock.
type Pool struct {
	mu        sync.RWMutex
	menus     map[string]Menu
	order     []string
	modifiers []Modifier

	log      *slog.Logger
	cache    Cache
	cacheTTL time.Duration
	keyFunc  func(ctx handler.Context) string
}

// PoolOption configures a Pool during construction.
type PoolOption func(*Pool)

// WithLogger sets the structured logger used for build diagnostics.
func WithLogger(log *slog.Logger) PoolOption {
	return func(p *Pool) {
		if log != nil {
			p.log = log
		}
	}
}

// WithCache stores per-source node lists in the given cache with the given
// TTL. Combine with WithCacheKeyFunc when node lists vary per request (for
// example per language).
func WithCache(cache Cache, ttl time.Duration) PoolOption {
	return func(p *Pool) {
		if cache != nil {
			p.cache = cache
			p.cacheTTL = ttl
		}
	}
}

// WithCacheKeyFunc sets the request discriminator appended to cache keys.
// The default discriminator is empty, meaning one cache entry per source.
func WithCacheKeyFunc(fn func(ctx handler.Context) string) PoolOption {
	return func(p *Pool) {
		if fn != nil {
			p.keyFunc = fn
		}
	}
}

// WithModifiers registers modifiers during construction, in order.
func WithModifiers(mods ...Modifier) PoolOption {
	return func(p *Pool) {
		p.modifiers = append(p.modifiers, mods...)
	}
}

// NewPool creates an empty pool.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		menus:   make(map[string]Menu),
		log:     slog.Default(),
		cache:   NopCache{},
		keyFunc: func(handler.Context) string { return "" },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds a menu source keyed by its namespace.
func (p *Pool) Register(m Menu) error {
	ns := m.Namespace()
	if ns == "" {
		return ErrEmptyNamespace
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.menus[ns]; exists {
		return fmt.Errorf("%w: %q", ErrMenuAlreadyRegistered, ns)
	}
	p.menus[ns] = m
	p.order = append(p.order, ns)
	return nil
}

// Use appends a modifier to the pool. Modifiers run in registration order on
// both passes of every build.
func (p *Pool) Use(mods ...Modifier) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modifiers = append(p.modifiers, mods...)
}

// buildConfig carries per-build options.
type buildConfig struct {
	namespace  string
	rootID     string
	levels     int
	breadcrumb bool
}

// NodesOption configures a single Pool.Nodes build.
type NodesOption func(*buildConfig)

// WithNamespace restricts the build to a single menu source.
func WithNamespace(ns string) NodesOption {
	return func(c *buildConfig) {
		c.namespace = ns
	}
}

// WithRootID re-roots the forest at the node with the given id: its children
// become the new roots.
func WithRootID(id string) NodesOption {
	return func(c *buildConfig) {
		c.rootID = id
	}
}

// WithLevels truncates the forest to the given depth (1 keeps only roots).
// Zero or negative keeps the full depth.
func WithLevels(n int) NodesOption {
	return func(c *buildConfig) {
		c.levels = n
	}
}

// WithBreadcrumb flags the build as a breadcrumb computation. The flag is
// passed through to modifiers; the pool itself treats both build kinds the
// same way.
func WithBreadcrumb() NodesOption {
	return func(c *buildConfig) {
		c.breadcrumb = true
	}
}

// Nodes builds the navigation forest for a request and returns its root
// nodes. Use Flatten to get the depth-first node list.
func (p *Pool) Nodes(ctx handler.Context, opts ...NodesOption) ([]*Node, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	p.mu.RLock()
	order := make([]string, 0, len(p.order))
	for _, ns := range p.order {
		if cfg.namespace == "" || ns == cfg.namespace {
			order = append(order, ns)
		}
	}
	menus := make([]Menu, len(order))
	for i, ns := range order {
		menus[i] = p.menus[ns]
	}
	mods := make([]Modifier, len(p.modifiers))
	copy(mods, p.modifiers)
	p.mu.RUnlock()

	var all []*Node
	for i, m := range menus {
		nodes, err := p.sourceNodes(ctx, order[i], m)
		if err != nil {
			return nil, fmt.Errorf("menu %q: %w", order[i], err)
		}
		for _, n := range nodes {
			if n.Namespace == "" {
				n.Namespace = order[i]
			}
		}
		all = append(all, nodes...)
	}

	roots := p.link(ctx, all)

	roots = applyModifiers(ctx, mods, roots, cfg, false)

	if cfg.rootID != "" {
		roots = rootScope(roots, cfg.rootID)
	}
	if cfg.levels > 0 {
		roots = CutLevels(roots, cfg.levels)
	}

	roots = applyModifiers(ctx, mods, roots, cfg, true)

	p.log.LogAttrs(ctx, slog.LevelDebug, "navigation built",
		logger.Component("menu"),
		logger.Namespace(cfg.namespace),
		logger.Count("sources", len(menus)),
		logger.Count("nodes", len(Flatten(roots))),
		logger.Elapsed(start),
	)

	return roots, nil
}

// sourceNodes returns one source's flat node list, consulting the cache
// first. Cache failures are logged and treated as misses: a dead cache must
// never take navigation down with it.
func (p *Pool) sourceNodes(ctx handler.Context, ns string, m Menu) ([]*Node, error) {
	key := cacheKeyPrefix + ns + ":" + p.keyFunc(ctx)

	if data, err := p.cache.Get(ctx, key); err == nil {
		var nodes []*Node
		if jsonErr := json.Unmarshal(data, &nodes); jsonErr == nil {
			return nodes, nil
		}
		// Corrupt entry: drop it and rebuild.
		_ = p.cache.Delete(ctx, key)
	} else if !errors.Is(err, ErrCacheMiss) {
		p.log.LogAttrs(ctx, slog.LevelWarn, "menu cache read failed",
			logger.Component("menu"), logger.Namespace(ns), logger.Error(err))
	}

	nodes, err := m.Nodes(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(nodes); err == nil {
		if err := p.cache.Set(ctx, key, data, p.cacheTTL); err != nil {
			p.log.LogAttrs(ctx, slog.LevelWarn, "menu cache write failed",
				logger.Component("menu"), logger.Namespace(ns), logger.Error(err))
		}
	}

	return nodes, nil
}

// link assembles the flat node list into a forest. Parents must appear
// before their children within the merged list; a node whose parent is
// missing (or not yet seen) is dropped together with its own descendants,
// matching the contract that linkage errors degrade the menu rather than
// fail the request.
func (p *Pool) link(ctx handler.Context, nodes []*Node) []*Node {
	done := make(map[string]map[string]*Node)
	register := func(n *Node) {
		byID := done[n.Namespace]
		if byID == nil {
			byID = make(map[string]*Node)
			done[n.Namespace] = byID
		}
		byID[n.ID] = n
	}

	var roots []*Node
	for _, n := range nodes {
		if n.ParentID == "" {
			register(n)
			roots = append(roots, n)
			continue
		}

		parentNS := n.ParentNamespace
		if parentNS == "" {
			parentNS = n.Namespace
		}
		parent := done[parentNS][n.ParentID]
		if parent == nil {
			p.log.LogAttrs(ctx, slog.LevelDebug, "dropping orphan node",
				logger.Component("menu"),
				logger.Namespace(n.Namespace),
				logger.NodeID(n.ID),
				logger.Key("parent_id", n.ParentID),
			)
			continue
		}

		n.Parent = parent
		parent.Children = append(parent.Children, n)
		register(n)
	}
	return roots
}

// applyModifiers runs every modifier once for the given pass. A modifier
// returning nil leaves the forest unchanged.
func applyModifiers(ctx handler.Context, mods []Modifier, roots []*Node, cfg buildConfig, postCut bool) []*Node {
	for _, mod := range mods {
		if out := mod.Modify(ctx, roots, cfg.namespace, cfg.rootID, postCut, cfg.breadcrumb); out != nil {
			roots = out
		}
	}
	return roots
}

// rootScope re-roots the forest at the node with the given id. The node's
// children become the new roots with their Parent reference cleared; when no
// node carries the id the result is empty.
func rootScope(roots []*Node, rootID string) []*Node {
	for _, n := range Flatten(roots) {
		if n.ID != rootID {
			continue
		}
		children := n.Children
		n.Children = nil
		for _, child := range children {
			child.Parent = nil
		}
		return children
	}
	return nil
}

// CutLevels truncates the forest to the given depth: levels of 1 keeps only
// the roots. Zero or negative levels return the forest unchanged.
func CutLevels(roots []*Node, levels int) []*Node {
	if levels <= 0 {
		return roots
	}
	for _, n := range roots {
		cutBelow(n, levels-1)
	}
	return roots
}

func cutBelow(n *Node, remaining int) {
	if remaining == 0 {
		for _, child := range n.Children {
			child.Parent = nil
		}
		n.Children = nil
		return
	}
	for _, child := range n.Children {
		cutBelow(child, remaining-1)
	}
}
