package pg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/cmskit/core/page"
)

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PageStore loads the page tree from PostgreSQL. It implements page.Store
// and participates in a caller transaction when one is carried in the
// context via WithTx.
type PageStore struct {
	pool      *pgxpool.Pool
	fallbacks []string
}

// StoreOption configures a PageStore.
type StoreOption func(*PageStore)

// WithFallbackLanguages sets the language order stamped onto loaded pages
// for translation fallback.
func WithFallbackLanguages(langs ...string) StoreOption {
	return func(s *PageStore) {
		s.fallbacks = langs
	}
}

// NewPageStore creates a page store backed by the given pool.
func NewPageStore(pool *pgxpool.Pool, opts ...StoreOption) *PageStore {
	s := &PageStore{pool: pool}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PageStore) db(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// ByID returns the page with the given ID, or page.ErrPageNotFound.
func (s *PageStore) ByID(ctx context.Context, id uuid.UUID) (*page.Page, error) {
	const q = `
		SELECT id, parent_id, position, in_navigation
		FROM pages
		WHERE id = $1`

	p, err := s.scanPage(s.db(ctx).QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	if err := s.loadTranslations(ctx, map[uuid.UUID]*page.Page{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ByPath returns the page served under the given absolute path in any
// language, or page.ErrPageNotFound. Trailing slashes are insignificant.
func (s *PageStore) ByPath(ctx context.Context, path string) (*page.Page, error) {
	const q = `
		SELECT p.id, p.parent_id, p.position, p.in_navigation
		FROM pages p
		JOIN page_translations t ON t.page_id = p.id
		WHERE trim(trailing '/' from t.path) = trim(trailing '/' from $1)
		LIMIT 1`

	p, err := s.scanPage(s.db(ctx).QueryRow(ctx, q, path))
	if err != nil {
		return nil, err
	}
	if err := s.loadTranslations(ctx, map[uuid.UUID]*page.Page{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

// Navigation returns the whole page tree ordered parents before children,
// siblings by position.
func (s *PageStore) Navigation(ctx context.Context) ([]*page.Page, error) {
	const q = `
		WITH RECURSIVE tree AS (
			SELECT id, parent_id, position, in_navigation,
			       ARRAY[position] AS sort_path
			FROM pages
			WHERE parent_id IS NULL
			UNION ALL
			SELECT p.id, p.parent_id, p.position, p.in_navigation,
			       t.sort_path || p.position
			FROM pages p
			JOIN tree t ON p.parent_id = t.id
		)
		SELECT id, parent_id, position, in_navigation
		FROM tree
		ORDER BY sort_path`

	rows, err := s.db(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*page.Page
	byID := make(map[uuid.UUID]*page.Page)
	for rows.Next() {
		p, err := s.scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadTranslations(ctx, byID); err != nil {
		return nil, err
	}
	return pages, nil
}

// scanPage reads one pages row. A NULL parent_id becomes uuid.Nil.
func (s *PageStore) scanPage(row pgx.Row) (*page.Page, error) {
	var (
		p        page.Page
		parentID *uuid.UUID
	)
	if err := row.Scan(&p.ID, &parentID, &p.Position, &p.InNavigation); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, page.ErrPageNotFound
		}
		return nil, err
	}
	if parentID != nil {
		p.ParentID = *parentID
	}
	p.Translations = make(map[string]page.Translation)
	p.Fallbacks = s.fallbacks
	return &p, nil
}

// loadTranslations fetches the translations of all given pages in one query.
func (s *PageStore) loadTranslations(ctx context.Context, pages map[uuid.UUID]*page.Page) error {
	if len(pages) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(pages))
	for id := range pages {
		ids = append(ids, id)
	}

	const q = `
		SELECT page_id, language, slug, title, path
		FROM page_translations
		WHERE page_id = ANY($1)`

	rows, err := s.db(ctx).Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pageID uuid.UUID
			lang   string
			tr     page.Translation
		)
		if err := rows.Scan(&pageID, &lang, &tr.Slug, &tr.Title, &tr.Path); err != nil {
			return err
		}
		if p, ok := pages[pageID]; ok {
			p.Translations[lang] = tr
		}
	}
	return rows.Err()
}
