package main

import (
	"fmt"

	"github.com/daybook-labs/daybook/internal/config"
	"github.com/daybook-labs/daybook/internal/platform/logger"
	"github.com/daybook-labs/daybook/internal/platform/server"
	"github.com/daybook-labs/daybook/internal/wordcount"
)

func main() {
	log := logger.New("daybook-wordcount")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	addr := fmt.Sprintf(":%d", cfg.WordcountPort)
	if err := server.Run(log, addr, wordcount.NewRouter()); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Server exited")
}
