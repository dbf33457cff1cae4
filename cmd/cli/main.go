package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/marketplac/internal/buildinfo"
	"github.com/dmitrijs2005/marketplac/internal/client/cli"
	"github.com/dmitrijs2005/marketplac/internal/client/config"
	"github.com/dmitrijs2005/marketplac/internal/logging"
	"go.uber.org/zap"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = zl.Sync() }()

	app, err := cli.NewApp(cfg, logging.NewZapLogger(zl))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
