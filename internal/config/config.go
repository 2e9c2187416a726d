package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path    string        `env:"DB_PATH" envDefault:"meubanco.db" validate:"required"` // SQLite database file path
	Driver  string        `env:"DB_DRIVER" envDefault:"sqlite3" validate:"oneof=sqlite3 sqlite"`
	Timeout time.Duration `env:"DB_TIMEOUT" envDefault:"3s" validate:"gt=0"` // per statement
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment, after loading .env from the
// working directory when it exists. Variables already set win over .env.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with explicit dotenv files. Missing files are skipped.
func LoadFrom(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// String returns a one-line representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s (%s, timeout %s), Log: %s}", c.Database.Path, c.Database.Driver, c.Database.Timeout, c.Log.Level)
}
