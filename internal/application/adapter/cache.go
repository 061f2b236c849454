// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Cache is a best-effort key-value store with per-entry expiry.
// Implementations never return transport errors to the caller: a failed Get
// is reported as a miss and a failed Set as false.
type Cache interface {
	// Get returns the value stored under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. It reports whether the write succeeded.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool

	// Available reports whether the cache was configured at construction.
	Available() bool

	// Ping checks connectivity with the backing store.
	Ping(ctx context.Context) error
}
