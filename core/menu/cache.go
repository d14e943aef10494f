package menu

import (
	"context"
	"time"
)

// Cache stores the flat, pre-link node lists of individual menu sources so
// expensive sources (database-backed page menus, remote APIs) are not hit on
// every request. Values are JSON-encoded node lists; linking always happens
// per request on fresh copies.
type Cache interface {
	// Get returns the cached value or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// NopCache is the default Cache: every Get misses and Set/Delete are no-ops.
type NopCache struct{}

// Get always returns ErrCacheMiss.
func (NopCache) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, ErrCacheMiss
}

// Set discards the value.
func (NopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// Delete does nothing.
func (NopCache) Delete(_ context.Context, _ string) error {
	return nil
}
