package store

import "errors"

// Error kinds. Externally every failure collapses to one opaque message;
// these sentinels are what logging, auditing and tests distinguish.
var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnknownResource     = errors.New("unknown resource")
	ErrUnknownContribution = errors.New("unknown contribution")
	ErrBlocked             = errors.New("identity is blocked")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
