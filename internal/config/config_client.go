package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds settings for the terminal client: where the server
// lives, how long requests may take, and how often the feed refreshes in the
// background. The client is configured from environment variables only; it is
// an interactive program and should not fight the TUI for flag parsing.
type ClientConfig struct {
	// Adapter holds the server connection settings.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers ClientWorkers `envPrefix:"WORKERS_"`
}

// ClientAdapter holds connection settings for the HTTP server adapter.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the go-post-board server.
	// Env: BOARD_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds every request the adapter makes.
	// Env: BOARD_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientWorkers holds background job settings for the client.
type ClientWorkers struct {
	// FeedRefreshInterval is how often the feed is re-fetched while the TUI
	// is running. Zero disables background refresh.
	// Env: BOARD_WORKERS_FEED_REFRESH_INTERVAL
	FeedRefreshInterval time.Duration `env:"FEED_REFRESH_INTERVAL" envDefault:"1m"`
}

// GetClientConfig loads and validates the client configuration from
// environment variables.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "BOARD_"}); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
