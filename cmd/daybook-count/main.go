package main

import (
	"fmt"

	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/entrycount"
	"github.com/daybook-labs/daybook/internal/platform/logger"
	"github.com/daybook-labs/daybook/internal/platform/server"
)

func main() {
	log := logger.New("daybook-count")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	addr := fmt.Sprintf(":%d", cfg.CountPort)
	if err := server.Run(log, addr, entrycount.NewRouter(cfg.DataDir)); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Server exited")
}
