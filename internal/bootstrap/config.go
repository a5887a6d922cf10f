package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/tradehub/tradehub-api/config"
)

// InitLogger installs a JSON slog logger as the process default.
func InitLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// LoadConfig reads an optional .env file and parses configuration from
// the environment.
func LoadConfig() (*config.AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &config.AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Sanitize()

	return cfg, nil
}
