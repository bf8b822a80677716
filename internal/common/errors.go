// Package common defines shared sentinel errors used across the
// persistence and model layers of propledger. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	//
	// ErrNotFound means absence, not failure: a backend has no document
	// for the requested username. ErrRemoteUnavailable wraps any
	// transport/auth/server fault of a remote backend; it never escapes
	// the storage boundary unwrapped.
	ErrNotFound          = errors.New("not found")
	ErrRemoteUnavailable = errors.New("remote storage unavailable")

	// Codec errors.
	ErrMalformedDocument = errors.New("malformed ledger document")

	// Model validation errors. Always recoverable by the caller.
	ErrEmptyName       = errors.New("property name must not be empty")
	ErrDuplicateName   = errors.New("property name already exists")
	ErrLastProperty    = errors.New("cannot remove the last property")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrIndexOutOfRange = errors.New("expense index out of range")
)
