package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Question data sources.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Accepted default difficulty. From 10 up every answer gets the minimum
// tolerance of one edit.
const (
	minDifficulty = 1
	maxDifficulty = 15
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-engine"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Data      Data
	Postgres  Postgres
	Redis     Redis
	Validator Validator
	Sessions  Sessions
}

// Data selects where the question catalog is loaded from.
type Data struct {
	Source      string        `env:"DATA_SOURCE" envDefault:"file"`
	Dir         string        `env:"DATA_DIR" envDefault:"data/json"`
	BaseURL     string        `env:"DATA_BASE_URL"`
	HTTPTimeout time.Duration `env:"DATA_HTTP_TIMEOUT" envDefault:"10s"`
}

// Postgres captures connection info for the SQL database. Only required when
// DATA_SOURCE=postgres.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// DSN renders the libpq connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// Redis holds the high-score store configuration.
type Redis struct {
	Addr      string `env:"REDIS_ADDR,notEmpty"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize  int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"highscore"`
}

// Validator tunes free-text answer matching.
type Validator struct {
	DefaultDifficulty int  `env:"VALIDATOR_DEFAULT_DIFFICULTY" envDefault:"5"`
	NameParts         bool `env:"VALIDATOR_NAME_PARTS" envDefault:"true"`
}

// Sessions governs per-player pool lifetime.
type Sessions struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *App) validate() error {
	switch c.Data.Source {
	case SourceFile:
		if c.Data.Dir == "" {
			return fmt.Errorf("DATA_DIR is required for the file source")
		}
	case SourceHTTP:
		if c.Data.BaseURL == "" {
			return fmt.Errorf("DATA_BASE_URL is required for the http source")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.Data.Source)
	}
	if c.Validator.DefaultDifficulty < minDifficulty || c.Validator.DefaultDifficulty > maxDifficulty {
		return fmt.Errorf("VALIDATOR_DEFAULT_DIFFICULTY must be within %d..%d, got %d",
			minDifficulty, maxDifficulty, c.Validator.DefaultDifficulty)
	}
	return nil
}
