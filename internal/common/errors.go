// Package common defines sentinel errors shared across resipass layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNoSession means no credential is stored locally; the caller must
	// log in before issuing authenticated calls.
	ErrNoSession = errors.New("no stored session")

	// ErrUnauthorized is the client-side mapping of an HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is the client-side mapping of an HTTP 404.
	ErrNotFound = errors.New("not found")
)
