package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Signing secrets for the two token families. They are independent
	// on purpose: leaking one must not compromise the other.
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET"`

	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=15m"`
	// TTL of access tokens minted through /auth/refresh. Deliberately
	// short: clients that refresh are expected to refresh often.
	RefreshAccessTokenTTL time.Duration `env:"REFRESH_ACCESS_TOKEN_TTL, default=10s"`
	RefreshTokenTTL       time.Duration `env:"REFRESH_TOKEN_TTL,        default=24h"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	// Login attempts allowed per client IP within LoginRateWindow.
	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT,  default=5"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=5m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Square SquareConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SquareConfig struct {
	AccessToken string `env:"SQUARE_ACCESS_TOKEN"`
	// Either "sandbox" or "production"; selects the API host.
	Environment string `env:"SQUARE_ENVIRONMENT, default=sandbox"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("load config: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	return &cfg, nil
}
