package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr     string
	Env      string
	LogLevel logrus.Level
}

// Load reads an optional .env file, then the environment, falling back
// to defaults suitable for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr: getEnv("ADDR", ":8080"),
		Env:  getEnv("ENV", "development"),
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid LOG_LEVEL")
	}
	cfg.LogLevel = level

	return cfg, nil
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
