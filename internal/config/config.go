package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Inventory InventoryConfig
	Logging   LoggingConfig
}

// InventoryConfig holds the persistence path and reporting options.
type InventoryConfig struct {
	Path         string
	LowThreshold int
}

// LoggingConfig holds log output options.
type LoggingConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	threshold, err := getenvIntWithDefault("STOCKROOM_LOW_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Inventory: InventoryConfig{
			Path:         getenvWithDefault("STOCKROOM_FILE", "inventory.json"),
			LowThreshold: threshold,
		},
		Logging: LoggingConfig{
			Level: getenvWithDefault("STOCKROOM_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Inventory.Path == "" {
		return errors.New("STOCKROOM_FILE must not be empty")
	}

	if c.Inventory.LowThreshold < 0 {
		return errors.New("STOCKROOM_LOW_THRESHOLD must not be negative")
	}

	if c.Logging.Level == "" {
		return errors.New("STOCKROOM_LOG_LEVEL must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return parsed, nil
}
