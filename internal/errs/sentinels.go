// Package errs contains sentinel errors shared across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed id, enum value or request payload.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing or invalid session token.
	ErrUnauthorized = errors.New("unauthorized")
)
