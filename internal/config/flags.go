package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/propledger/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string     directory for local ledger files
//	-r string     remote driver ("postgres", "s3" or empty)
//	-dsn string   PostgreSQL DSN for the postgres driver
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-dsn"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LocalDir, "d", cfg.LocalDir, "directory for local ledger files")
	fs.StringVar(&cfg.RemoteDriver, "r", cfg.RemoteDriver, "remote driver (postgres, s3 or empty for local-only)")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "PostgreSQL DSN for the postgres driver")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
