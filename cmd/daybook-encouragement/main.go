package main

import (
	"fmt"

	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/encouragement"
	"github.com/daybook-labs/daybook/internal/platform/logger"
	"github.com/daybook-labs/daybook/internal/platform/server"
)

func main() {
	log := logger.New("daybook-encouragement")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	addr := fmt.Sprintf(":%d", cfg.EncouragementPort)
	if err := server.Run(log, addr, encouragement.NewRouter()); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Server exited")
}
