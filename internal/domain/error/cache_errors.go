// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Cache errors. These never reach a caller of the read path: the cache client
// logs them and reports a miss instead.
var (
	// ErrCacheNotConfigured is logged once when cache credentials are absent.
	ErrCacheNotConfigured = errors.New("cache is not configured")

	// ErrCacheUnavailable wraps any transport failure of the cache store.
	ErrCacheUnavailable = errors.New("cache unavailable")
)
