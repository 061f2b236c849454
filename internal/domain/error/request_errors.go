// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// ErrRateLimited is returned when a client exceeds the write rate limit.
var ErrRateLimited = errors.New("too many requests")

// RequestErrorCode defines error codes for request-level rejections.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Throttling errors (02XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"

	// Decoding errors (01XXXX)
	ErrCodeMalformedRequest RequestErrorCode = "REQ-010001"
)
