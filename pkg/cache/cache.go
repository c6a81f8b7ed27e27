// Package cache provides best-effort caching for rendered artifacts.
//
// Rasterizing a structure graph (DOT through Graphviz to SVG or PNG) is the
// only expensive operation in the toolchain, so rendered bytes are cached on
// disk keyed by document content and render options. Cache failures degrade
// to re-rendering, never to command failure.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact storage backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL stores forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered artifact from the document's
// content hash and every option that affects the output bytes.
func RenderKey(doc []byte, format string, detailed bool) string {
	return hashKey("render", Hash(doc), format, detailed)
}
