package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"tide/config"
	"tide/di"
	"tide/shared/logger"
)

// @title Tide API
// @version 1.0
// @description Real-time state synchronization backend for hotel operations.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	ctx := context.Background()

	if err := app.Gateway.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to restore persisted state")
	}

	if err := app.Settings.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default settings")
	}

	go app.Archiver.Run(ctx)

	app.HTTP.Serve()
}
