package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the remote inventory API.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// HTTPTimeout bounds every request end to end.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=30s"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// JWTSecret signs the tokens the stub API issues. Only the stub server
	// reads it; the client treats tokens as opaque.
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
