package config

import (
	"errors"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config carries all process configuration, loaded from the environment (and
// optionally a .env file). Services receive the values they need explicitly;
// nothing reads the environment after startup.
type Config struct {
	HTTPAddr         string `env:"HTTP_ADDR,default=:8080"`
	DatabaseURL      string `env:"DB_URL"`
	RedisURL         string `env:"REDIS_URL"`
	JWTSecret        string `env:"JWT_SECRET"`
	TokenTTLHours    int    `env:"TOKEN_TTL_HOURS,default=24"`
	MaxMessageLength int    `env:"MAX_MESSAGE_LENGTH,default=1000"`
	QueueConcurrency int    `env:"QUEUE_CONCURRENCY,default=10"`
}

// Load reads a .env file if present and then unmarshals the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("config: DB_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("config: JWT_SECRET is not set")
	}
	return cfg, nil
}

// TokenTTL returns the configured token lifetime as a duration.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}
