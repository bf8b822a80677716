// Package cli implements the interactive shell of propledger. It is UI
// glue: every piece of persistence goes through the LedgerService
// contract, and the shell only renders results and collects input.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/propledger/internal/config"
	"github.com/dmitrijs2005/propledger/internal/logging"
	"github.com/dmitrijs2005/propledger/internal/models"
	"github.com/dmitrijs2005/propledger/internal/services"
	"github.com/dmitrijs2005/propledger/internal/storage"
	"github.com/dmitrijs2005/propledger/internal/storage/file"
	"github.com/dmitrijs2005/propledger/internal/storage/postgres"
	"github.com/dmitrijs2005/propledger/internal/storage/s3"
)

type App struct {
	config *config.Config
	svc    *services.LedgerService
	log    logging.Logger

	userName string
	ledger   *models.Ledger

	reader *bufio.Reader
}

// NewApp wires the storage backends and the ledger service. A remote
// backend that is configured but unreachable downgrades the app to
// local-only mode instead of failing startup.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	local, err := file.New(cfg.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("initializing local storage: %w", err)
	}

	var remote storage.Backend
	if cfg.RemoteConfigured() {
		remote, err = newRemoteBackend(ctx, cfg)
		if err != nil {
			log.Warn(ctx, "remote backend unavailable, running local-only", "driver", cfg.RemoteDriver, "error", err)
			remote = nil
		} else {
			log.Info(ctx, "remote backend attached", "driver", cfg.RemoteDriver)
		}
	}

	svc := services.NewLedgerService(remote, local, log)
	return &App{config: cfg, svc: svc, log: log, reader: bufio.NewReader(os.Stdin)}, nil
}

func newRemoteBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.RemoteDriver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseDSN)
	case config.DriverS3:
		return s3.New(ctx, s3.Config{
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown remote driver %q", cfg.RemoteDriver)
	}
}

// Run opens a session for one username and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.svc.Close(); err != nil {
			a.log.Error(ctx, "closing storage", "error", err)
		}
	}()

	userName, err := GetSimpleText(a.reader, "Enter username:", os.Stdout)
	if err != nil {
		return fmt.Errorf("reading username: %w", err)
	}
	if userName == "" {
		return fmt.Errorf("username must not be empty")
	}

	ledger, err := a.svc.Load(ctx, userName)
	if err != nil {
		return fmt.Errorf("loading ledger for %s: %w", userName, err)
	}

	a.userName = userName
	a.ledger = ledger
	a.Root(ctx)
	return nil
}

func (a *App) mode() string {
	if a.svc.RemoteConfigured() {
		return "remote"
	}
	return "local"
}
