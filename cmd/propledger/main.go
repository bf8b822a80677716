package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/propledger/internal/buildinfo"
	"github.com/dmitrijs2005/propledger/internal/cli"
	"github.com/dmitrijs2005/propledger/internal/config"
	"github.com/dmitrijs2005/propledger/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env file is fine, the environment still applies.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("error loading .env file: %v", err)
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.Setup(os.Stderr, cfg.LogJSON)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
