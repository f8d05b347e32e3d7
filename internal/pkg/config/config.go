package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// PublicBaseURL is where browsers reach the portal; checkout return
	// URLs are built from it.
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`

	Session    SessionConfig
	Backend    BackendConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	StressTest StressTestConfig

	RateLimitRPS float64 `env:"RATE_LIMIT_RPS, default=5"`
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
}

// BackendConfig points at the backend actor. An empty URL runs the
// in-process fake.
type BackendConfig struct {
	URL    string `env:"BACKEND_URL"`
	APIKey string `env:"BACKEND_API_KEY"`
}

// MongoConfig is optional; without a URI reports are archived in memory.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=portal"`
}

// RedisConfig is optional; without an address every store is in memory.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"QUERY_CACHE_TTL, default=5m"`
}

type StressTestConfig struct {
	TimeScale float64 `env:"STRESS_TEST_TIME_SCALE, default=1"`
	Workers   int     `env:"STRESS_TEST_WORKERS,    default=4"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		if c.IsProduction() {
			return fmt.Errorf("config: SESSION_SECRET is required in production")
		}
		c.Session.Secret = "development-secret"
	}
	if c.StressTest.TimeScale < 0 {
		return fmt.Errorf("config: STRESS_TEST_TIME_SCALE must not be negative")
	}
	if c.Backend.URL == "" && c.IsProduction() {
		return fmt.Errorf("config: BACKEND_URL is required in production")
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
