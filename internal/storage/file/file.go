// Package file implements the local ledger store: one JSON document
// per username in a dedicated directory. It is the always-available
// fallback behind the remote backends.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/propledger/internal/common"
)

// Backend stores one document per username under dir.
type Backend struct {
	dir string
}

// New creates the directory if it is absent and returns a Backend
// rooted there. A relative dir is resolved against the working
// directory.
func New(dir string) (*Backend, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return &Backend{dir: dir}, nil
}

// Load reads the user's document. common.ErrNotFound means no document
// has ever been saved for this username.
func (b *Backend) Load(_ context.Context, username string) ([]byte, error) {
	path, err := b.path(username)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Save overwrites the user's document. The write is atomic from a
// reader's perspective: the document lands in a temp file in the same
// directory first and is then renamed over the target, so a concurrent
// Load never observes a partial write.
func (b *Backend) Save(_ context.Context, username string, doc []byte) error {
	path, err := b.path(username)
	if err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, doc, 0o660); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

func (b *Backend) Close() error { return nil }

// path maps a username to its document file, refusing names that could
// escape the storage directory.
func (b *Backend) path(username string) (string, error) {
	if username == "" || username == "." || username == ".." ||
		strings.ContainsAny(username, `/\`) || username != filepath.Base(username) {
		return "", fmt.Errorf("invalid username %q", username)
	}
	return filepath.Join(b.dir, username+".json"), nil
}
