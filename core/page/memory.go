package page

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and small static sites.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Page
	byPath map[string]*Page
	order  []*Page
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[uuid.UUID]*Page),
		byPath: make(map[string]*Page),
	}
}

// Add inserts or replaces a page. Paths of all translations are indexed with
// trailing slashes normalized away.
func (s *MemoryStore) Add(pages ...*Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range pages {
		if old, exists := s.byID[p.ID]; exists {
			for _, t := range old.Translations {
				delete(s.byPath, normalizePath(t.Path))
			}
			for i, existing := range s.order {
				if existing.ID == p.ID {
					s.order[i] = p
					break
				}
			}
		} else {
			s.order = append(s.order, p)
		}

		s.byID[p.ID] = p
		for _, t := range p.Translations {
			s.byPath[normalizePath(t.Path)] = p
		}
	}
}

// ByID implements Store.
func (s *MemoryStore) ByID(_ context.Context, id uuid.UUID) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// ByPath implements Store.
func (s *MemoryStore) ByPath(_ context.Context, path string) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byPath[normalizePath(path)]
	if !ok {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// Navigation implements Store: parents before children, siblings ordered by
// position.
func (s *MemoryStore) Navigation(_ context.Context) ([]*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make(map[uuid.UUID][]*Page)
	var roots []*Page
	for _, p := range s.order {
		if p.ParentID == uuid.Nil {
			roots = append(roots, p)
		} else {
			children[p.ParentID] = append(children[p.ParentID], p)
		}
	}

	byPosition := func(pages []*Page) {
		sort.SliceStable(pages, func(i, j int) bool {
			return pages[i].Position < pages[j].Position
		})
	}
	byPosition(roots)

	out := make([]*Page, 0, len(s.order))
	var walk func(pages []*Page)
	walk = func(pages []*Page) {
		for _, p := range pages {
			out = append(out, p)
			kids := children[p.ID]
			byPosition(kids)
			walk(kids)
		}
	}
	walk(roots)
	return out, nil
}

// normalizePath strips a trailing slash so "/a/b/" and "/a/b" hit the same
// index entry.
func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/")
}
