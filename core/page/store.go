package page

import (
	"context"

	"github.com/google/uuid"
)

// Store loads the page tree. Implementations must be safe for concurrent
// use; the in-memory store below serves tests and small sites, the
// integration packages provide database-backed ones.
type Store interface {
	// ByID returns the page with the given id or ErrPageNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*Page, error)

	// ByPath returns the page served under the given absolute path in any
	// language, or ErrPageNotFound.
	ByPath(ctx context.Context, path string) (*Page, error)

	// Navigation returns the full page tree in rendering order: parents
	// before children, siblings by position. Visibility filtering is the
	// menu layer's job.
	Navigation(ctx context.Context) ([]*Page, error)
}
