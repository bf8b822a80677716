// Package services hosts the persistence policy of propledger. The
// LedgerService prefers a configured remote backend and degrades to
// the local file store, keeping save/load semantics correct despite
// that duality.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/propledger/internal/common"
	"github.com/dmitrijs2005/propledger/internal/logging"
	"github.com/dmitrijs2005/propledger/internal/models"
	"github.com/dmitrijs2005/propledger/internal/storage"
)

// LedgerService loads, saves and mutates user ledgers.
//
// Policy: on load, the remote backend is tried first when configured;
// on any remote failure the service falls through to the local store
// without retrying. On save, a healthy remote is authoritative and the
// local store is not written; only when the remote save fails does the
// document go to the local store, so a degraded session never loses
// data silently.
//
// There is no merge between remote and local and no cross-session
// locking: with two concurrent sessions on one username the last write
// wins. That is an accepted limitation, not an invariant.
type LedgerService struct {
	remote storage.Backend // nil means not configured, a valid mode
	local  storage.Backend
	log    logging.Logger
}

func NewLedgerService(remote, local storage.Backend, log logging.Logger) *LedgerService {
	return &LedgerService{remote: remote, local: local, log: log.With("component", "ledger")}
}

// RemoteConfigured reports whether a remote backend is attached.
func (s *LedgerService) RemoteConfigured() bool { return s.remote != nil }

// Load fetches the user's ledger, preferring the remote store.
//
// A remote "not found" falls through to the local store. Treating
// remote absence as authoritative would strand users whose local data
// predates the remote being enabled; falling through avoids that, and
// the remote becomes authoritative again on the next save.
//
// A user unknown to every backend gets a fresh ledger with one empty
// default property.
func (s *LedgerService) Load(ctx context.Context, username string) (*models.Ledger, error) {
	if s.remote != nil {
		doc, err := s.remote.Load(ctx, username)
		switch {
		case err == nil:
			s.log.Debug(ctx, "ledger loaded from remote", "username", username)
			return models.DecodeDocument(doc)
		case errors.Is(err, common.ErrNotFound):
			s.log.Debug(ctx, "no remote ledger, trying local", "username", username)
		default:
			s.log.Warn(ctx, "remote load failed, falling back to local", "username", username, "error", err)
		}
	}

	doc, err := s.local.Load(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "no stored ledger, starting fresh", "username", username)
			return models.NewLedger(username), nil
		}
		return nil, fmt.Errorf("loading local ledger: %w", err)
	}
	return models.DecodeDocument(doc)
}

// Save persists the ledger. With a healthy remote the document goes
// there only; otherwise it is written through to the local store, and
// a local failure is returned to the caller.
func (s *LedgerService) Save(ctx context.Context, username string, l *models.Ledger) error {
	doc, err := models.EncodeDocument(l)
	if err != nil {
		return err
	}

	if s.remote != nil {
		err := s.remote.Save(ctx, username, doc)
		if err == nil {
			s.log.Debug(ctx, "ledger saved to remote", "username", username)
			return nil
		}
		s.log.Warn(ctx, "remote save failed, writing local copy", "username", username, "error", err)
	}

	if err := s.local.Save(ctx, username, doc); err != nil {
		return fmt.Errorf("saving local ledger: %w", err)
	}
	s.log.Debug(ctx, "ledger saved to local store", "username", username)
	return nil
}

// The mutation operations below apply a model change and, when it
// succeeds, save the ledger inline. Every add/delete persists
// immediately; there is no batching. Validation failures leave both
// the model and the stores untouched.

func (s *LedgerService) AddProperty(ctx context.Context, l *models.Ledger, name string) error {
	if err := l.AddProperty(name); err != nil {
		return err
	}
	return s.Save(ctx, l.Username, l)
}

func (s *LedgerService) RemoveProperty(ctx context.Context, l *models.Ledger, name string) error {
	if err := l.RemoveProperty(name); err != nil {
		return err
	}
	return s.Save(ctx, l.Username, l)
}

func (s *LedgerService) AddExpense(ctx context.Context, l *models.Ledger, property string, e models.Expense) error {
	if err := l.AddExpense(property, e); err != nil {
		return err
	}
	return s.Save(ctx, l.Username, l)
}

func (s *LedgerService) RemoveExpenseAt(ctx context.Context, l *models.Ledger, property string, i int) error {
	if err := l.RemoveExpenseAt(property, i); err != nil {
		return err
	}
	return s.Save(ctx, l.Username, l)
}

func (s *LedgerService) ClearProperty(ctx context.Context, l *models.Ledger, property string) error {
	if err := l.ClearProperty(property); err != nil {
		return err
	}
	return s.Save(ctx, l.Username, l)
}

// Close releases the backends.
func (s *LedgerService) Close() error {
	var errs []error
	if s.remote != nil {
		errs = append(errs, s.remote.Close())
	}
	errs = append(errs, s.local.Close())
	return errors.Join(errs...)
}
