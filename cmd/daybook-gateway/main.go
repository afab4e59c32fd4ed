package main

import (
	"github.com/daybook-labs/daybook/internal/api"
	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/platform/logger"
	"github.com/daybook-labs/daybook/internal/platform/server"
	"github.com/daybook-labs/daybook/internal/store"
)

func main() {
	log := logger.New("daybook-gateway")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	entries, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Entry store unavailable")
	}

	router := api.NewRouter(entries, cfg)
	if err := server.Run(log, cfg.GetHTTPAddr(), router); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Server exited")
}
