package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// RowStoreSurreal reads profile rows from the same SurrealDB instance that issues sessions.
	RowStoreSurreal = "surreal"
	// RowStorePostgres reads profile rows from a PostgreSQL database.
	RowStorePostgres = "postgres"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBAccess() string
	GetRowStore() string
	GetDatabaseURL() string
	GetLookupTimeout() time.Duration
	GetNotifyOnProfileFailure() bool
	GetFixturesDir() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string `envconfig:"APP_ADDR" default:":8080"`
	AppBaseURL    string `envconfig:"APP_BASE_URL" default:"http://localhost:8080"`
	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`

	DBUrl    string `envconfig:"SURREAL_URL" required:"true"`
	DBNs     string `envconfig:"SURREAL_NS" required:"true"`
	DBDb     string `envconfig:"SURREAL_DB" required:"true"`
	DBUser   string `envconfig:"SURREAL_USER"`
	DBPass   string `envconfig:"SURREAL_PASS"`
	DBAccess string `envconfig:"SURREAL_ACCESS" default:"account"`

	RowStore    string `envconfig:"ROW_STORE" default:"surreal"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	LookupTimeout          time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"5s"`
	NotifyOnProfileFailure bool          `envconfig:"GATE_NOTIFY_ON_PROFILE_FAILURE" default:"true"`

	FixturesDir string `envconfig:"FIXTURES_DIR"`
}

// Load reads an optional .env file and then processes the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv processes the current environment without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.RowStore {
	case RowStoreSurreal:
	case RowStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when ROW_STORE=%s", RowStorePostgres)
		}
	default:
		return fmt.Errorf("unsupported ROW_STORE %q", c.RowStore)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive, got %s", c.LookupTimeout)
	}
	return nil
}

func (c *Config) GetAppAddr() string { return c.AppAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetDBURL() string { return c.DBUrl }
func (c *Config) GetDBNs() string { return c.DBNs }
func (c *Config) GetDBDb() string { return c.DBDb }
func (c *Config) GetDBUser() string { return c.DBUser }
func (c *Config) GetDBPass() string { return c.DBPass }
func (c *Config) GetDBAccess() string { return c.DBAccess }
func (c *Config) GetRowStore() string { return c.RowStore }
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }
func (c *Config) GetLookupTimeout() time.Duration { return c.LookupTimeout }
func (c *Config) GetNotifyOnProfileFailure() bool { return c.NotifyOnProfileFailure }
func (c *Config) GetFixturesDir() string { return c.FixturesDir }
