package mongo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/cmskit/core/page"
)

// DefaultCollection is the collection the page store reads unless overridden.
const DefaultCollection = "pages"

// pageDoc is the persisted shape of a page. Paths is a denormalized index of
// all translation paths (trailing slash trimmed), maintained by Save, so
// ByPath stays a single indexed lookup.
type pageDoc struct {
	ID           string                    `bson:"_id"`
	ParentID     string                    `bson:"parent_id,omitempty"`
	Position     int                       `bson:"position"`
	InNavigation bool                      `bson:"in_navigation"`
	Translations map[string]translationDoc `bson:"translations"`
	Paths        []string                  `bson:"paths"`
}

type translationDoc struct {
	Slug  string `bson:"slug"`
	Title string `bson:"title"`
	Path  string `bson:"path"`
}

// PageStore loads the page tree from a MongoDB collection. It implements
// page.Store.
type PageStore struct {
	coll      *mongo.Collection
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

// WithCollection overrides the collection name.
func WithCollection(name string) StoreOption {
	return func(s *PageStore) {
		s.coll = s.coll.Database().Collection(name)
	}
}

// NewPageStore creates a page store reading the DefaultCollection of the
// given database.
func NewPageStore(db *mongo.Database, opts ...StoreOption) *PageStore {
	s := &PageStore{coll: db.Collection(DefaultCollection)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ByID returns the page with the given ID, or page.ErrPageNotFound.
func (s *PageStore) ByID(ctx context.Context, id uuid.UUID) (*page.Page, error) {
	var doc pageDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, page.ErrPageNotFound
		}
		return nil, err
	}
	return s.toPage(doc)
}

// ByPath returns the page served under the given absolute path in any
// language, or page.ErrPageNotFound. Trailing slashes are insignificant.
func (s *PageStore) ByPath(ctx context.Context, path string) (*page.Page, error) {
	var doc pageDoc
	err := s.coll.FindOne(ctx, bson.M{"paths": normalizePath(path)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, page.ErrPageNotFound
		}
		return nil, err
	}
	return s.toPage(doc)
}

// Navigation returns the whole page tree ordered parents before children,
// siblings by position.
func (s *PageStore) Navigation(ctx context.Context) ([]*page.Page, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var (
		pages    []*page.Page
		children = make(map[uuid.UUID][]*page.Page)
		roots    []*page.Page
	)
	for cursor.Next(ctx) {
		var doc pageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		p, err := s.toPage(doc)
		if err != nil {
			return nil, err
		}
		if p.ParentID == uuid.Nil {
			roots = append(roots, p)
		} else {
			children[p.ParentID] = append(children[p.ParentID], p)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	// Depth-first walk puts every parent before its children; the position
	// sort above keeps sibling order.
	var walk func(p *page.Page)
	walk = func(p *page.Page) {
		pages = append(pages, p)
		for _, child := range children[p.ID] {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return pages, nil
}

// Save upserts a page, rebuilding its denormalized path index.
func (s *PageStore) Save(ctx context.Context, p *page.Page) error {
	doc := pageDoc{
		ID:           p.ID.String(),
		Position:     p.Position,
		InNavigation: p.InNavigation,
		Translations: make(map[string]translationDoc, len(p.Translations)),
		Paths:        make([]string, 0, len(p.Translations)),
	}
	if p.ParentID != uuid.Nil {
		doc.ParentID = p.ParentID.String()
	}
	for lang, tr := range p.Translations {
		doc.Translations[lang] = translationDoc{Slug: tr.Slug, Title: tr.Title, Path: tr.Path}
		doc.Paths = append(doc.Paths, normalizePath(tr.Path))
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID},
		doc, options.Replace().SetUpsert(true))
	return err
}

func (s *PageStore) toPage(doc pageDoc) (*page.Page, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	p := &page.Page{
		ID:           id,
		Position:     doc.Position,
		InNavigation: doc.InNavigation,
		Translations: make(map[string]page.Translation, len(doc.Translations)),
		Fallbacks:    s.fallbacks,
	}
	if doc.ParentID != "" {
		parentID, err := uuid.Parse(doc.ParentID)
		if err != nil {
			return nil, err
		}
		p.ParentID = parentID
	}
	for lang, tr := range doc.Translations {
		p.Translations[lang] = page.Translation{Slug: tr.Slug, Title: tr.Title, Path: tr.Path}
	}
	return p, nil
}

func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/")
}
