package main

import (
	"fmt"

	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/export"
	"github.com/daybook-labs/daybook/internal/platform/logger"
	"github.com/daybook-labs/daybook/internal/platform/server"
	"github.com/daybook-labs/daybook/internal/store"
)

func main() {
	log := logger.New("daybook-export")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	entries, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Entry store unavailable")
	}

	addr := fmt.Sprintf(":%d", cfg.ExportPort)
	if err := server.Run(log, addr, export.NewRouter(entries, cfg.ExportDir)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Server exited")
}
