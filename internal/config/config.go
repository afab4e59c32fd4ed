package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration shared by the daybook processes.
// Environment variables are automatically parsed from the DAYBOOK_
// prefix, e.g. DAYBOOK_HTTP_PORT, DAYBOOK_DATA_DIR.
type Config struct {
	// HTTP Configuration (gateway)
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Helper service listen ports
	WordcountPort     int `envconfig:"WORDCOUNT_PORT" default:"5000"`
	EncouragementPort int `envconfig:"ENCOURAGEMENT_PORT" default:"5001"`
	CountPort         int `envconfig:"COUNT_PORT" default:"5002"`
	ExportPort        int `envconfig:"EXPORT_PORT" default:"5003"`

	// Storage layout
	DataDir   string `envconfig:"DATA_DIR" default:"data/entries"`
	ExportDir string `envconfig:"EXPORT_DIR" default:"exports"`

	// Helper service base URLs, as seen from the gateway
	WordcountURL     string `envconfig:"WORDCOUNT_URL" default:"http://localhost:5000"`
	EncouragementURL string `envconfig:"ENCOURAGEMENT_URL" default:"http://localhost:5001"`
	CountURL         string `envconfig:"COUNT_URL" default:"http://localhost:5002"`
	ExportURL        string `envconfig:"EXPORT_URL" default:"http://localhost:5003"`

	// Every downstream call is bounded by this timeout.
	DownstreamTimeout time.Duration `envconfig:"DOWNSTREAM_TIMEOUT" default:"4s"`
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DAYBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Str("export_dir", cfg.ExportDir).
		Str("wordcount_url", cfg.WordcountURL).
		Str("encouragement_url", cfg.EncouragementURL).
		Str("count_url", cfg.CountURL).
		Str("export_url", cfg.ExportURL).
		Dur("downstream_timeout", cfg.DownstreamTimeout).
		Msg("Configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the gateway's HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
