package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the fallback signing key outside production. Tokens signed
// with it are worthless for security; it exists so a fresh checkout runs
// without setup. Production startup refuses it.
const devJWTSecret = "insecure-dev-secret"

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required in production")

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables. The JWT secret fails
// closed: production with no secret is a startup error, while development
// silently picks the insecure default so local runs need no env at all.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWTSecret = devJWTSecret
	}

	return &cfg, nil
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, mandatory signing key).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingDevSecret reports whether the insecure fallback signing key is active.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}
