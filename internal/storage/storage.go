// Package storage defines the pluggable persistence contract of
// propledger: a keyed document store addressed by username. The
// concrete backends live in the subpackages file, postgres and s3.
package storage

import "context"

// Backend is a keyed get/put store of encoded ledger documents.
//
// Load returns common.ErrNotFound when no document exists for the
// username; that is absence, not a failure. Remote implementations
// wrap every transport/auth/server fault in
// common.ErrRemoteUnavailable so the caller can tell failure from
// absence with errors.Is.
type Backend interface {
	Load(ctx context.Context, username string) ([]byte, error)
	Save(ctx context.Context, username string, doc []byte) error
	Close() error
}
