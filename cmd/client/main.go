package main

import (
	"context"
	"log"
	"os"

	"github.com/ynitaziki/storefront/internal/buildinfo"
	"github.com/ynitaziki/storefront/internal/client/cli"
	"github.com/ynitaziki/storefront/internal/client/config"
	"github.com/ynitaziki/storefront/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
