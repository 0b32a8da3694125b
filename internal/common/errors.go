// Package common defines shared constants and sentinel errors used across
// the doorbell relay components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Classification errors: the object key carries no usable identifier.
	ErrEmptyIdentifier = errors.New("empty identifier")
	ErrNoTaskID        = errors.New("no task id in object key")

	// Event decoding errors.
	ErrMalformedEvent = errors.New("malformed event payload")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
