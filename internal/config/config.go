package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	API      API      `envPrefix:"API_"`
	Realtime Realtime `envPrefix:"REALTIME_"`
	Geo      Geo      `envPrefix:"GEO_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
}

// API contains backend HTTP API parameters.
type API struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:5000/api"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Realtime contains websocket transport parameters.
type Realtime struct {
	URL               string        `env:"URL" envDefault:"ws://localhost:5000/socket"`
	ReconnectAttempts uint64        `env:"RECONNECT_ATTEMPTS" envDefault:"5"`
	ReconnectDelay    time.Duration `env:"RECONNECT_DELAY" envDefault:"1s"`
}

// Geo contains device-location parameters.
type Geo struct {
	Endpoint string        `env:"ENDPOINT" envDefault:"http://ip-api.com/json"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Storage contains local session storage parameters.
type Storage struct {
	Path string `env:"PATH" envDefault:"tutorlink.db"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
