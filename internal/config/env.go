package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the ledger binaries.
type Config struct {
	SeedAddress   string `env:"LEDGER_SEED_ADDRESS" envDefault:"default"`
	SeedBalance   uint64 `env:"LEDGER_SEED_BALANCE" envDefault:"1000"`
	LogLevel      string `env:"LEDGER_LOG_LEVEL" envDefault:"info"`
	PublishEvents bool   `env:"LEDGER_PUBLISH_EVENTS" envDefault:"true"`
}

// Load reads the given dotenv files, if they exist, and then parses Config
// from the environment. Variables already set in the environment win over
// dotenv values.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load env: %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
