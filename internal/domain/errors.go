package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrUnauthenticated indicates a mutation requiring a viewer identity
	// was attempted without an active session
	ErrUnauthenticated = errors.New("no active session")

	// ErrForbidden indicates the viewer lacks the admin flag required by
	// the operation
	ErrForbidden = errors.New("admin access required")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput indicates a mutation payload failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the remote data store is unreachable
	ErrSourceUnavailable = errors.New("data source is unreachable")
)
