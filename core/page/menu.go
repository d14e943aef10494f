package page

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cmskit/core/handler"
	"github.com/dmitrymomot/cmskit/core/i18n"
	"github.com/dmitrymomot/cmskit/core/menu"
)

// DefaultMenuNamespace is the namespace PagesMenu registers under unless
// overridden.
const DefaultMenuNamespace = "pages"

// Attribute keys set on page-backed navigation nodes.
const (
	// AttrIsPage marks nodes produced from the page tree.
	AttrIsPage = "is_page"
	// AttrPosition holds the page's sibling position.
	AttrPosition = "position"
	// AttrFallbackURL marks nodes whose URL comes from a fallback language.
	AttrFallbackURL = "fallback_url"
)

// PagesMenu is a menu.Menu producing navigation nodes from the page tree.
// Pages without a translation in the request language are dropped when the
// language's "hide untranslated" policy is active, and served under their
// fallback-language URL otherwise.
type PagesMenu struct {
	store     Store
	languages *i18n.Config
	namespace string
}

// PagesMenuOption configures a PagesMenu.
type PagesMenuOption func(*PagesMenu)

// WithMenuNamespace overrides the menu namespace.
func WithMenuNamespace(ns string) PagesMenuOption {
	return func(m *PagesMenu) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// NewMenu creates a page-tree menu source over the given store.
func NewMenu(store Store, languages *i18n.Config, opts ...PagesMenuOption) *PagesMenu {
	m := &PagesMenu{
		store:     store,
		languages: languages,
		namespace: DefaultMenuNamespace,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Namespace implements menu.Menu.
func (m *PagesMenu) Namespace() string {
	return m.namespace
}

// Nodes implements menu.Menu.
func (m *PagesMenu) Nodes(ctx handler.Context) ([]*menu.Node, error) {
	lang := m.languages.LanguageFromRequest(ctx.Request())
	hide := m.languages.HideUntranslated(lang)

	pages, err := m.store.Navigation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load page tree: %w", err)
	}

	nodes := make([]*menu.Node, 0, len(pages))
	for _, p := range pages {
		url, err := p.URL(lang, !hide)
		if err != nil {
			// Untranslated and hidden. Children of a dropped page are
			// dropped by the pool's linker.
			continue
		}

		opts := []menu.NodeOption{
			menu.WithAttrs(map[string]any{
				AttrIsPage:   true,
				AttrPosition: p.Position,
			}),
		}
		if p.ParentID != uuid.Nil {
			opts = append(opts, menu.WithParent(p.ParentID.String()))
		}
		if !p.InNavigation {
			opts = append(opts, menu.Hidden())
		}

		node := menu.NewNode(p.Title(lang), url, p.ID.String(), opts...)
		if !p.HasTranslation(lang) {
			node.SetAttribute(AttrFallbackURL, true)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
