// Command server runs the YAAVS workshop backend.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/app"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/config"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	application, err := app.Build(ctx, cfg)
	if err != nil {
		logger.Fatal("Build application", zap.Error(err))
	}

	if err := application.Run(ctx); err != nil {
		logger.Fatal("Run application", zap.Error(err))
	}
}
