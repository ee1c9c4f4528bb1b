// Package config provides configuration management for the station
// checker.
//
// Configuration is loaded in the following order (later sources override
// earlier ones):
//  1. Default values
//  2. Configuration file (explicit path, or config.yaml searched in ".",
//     "$HOME/.gissmo-check" and "/etc/gissmo-check")
//  3. Environment variables with the GISSMO_ prefix
//
// Environment variables use underscores for nested keys:
//   - GISSMO_API_BASE_URL=https://gissmo.example.org/api/v1
//   - GISSMO_LOGGING_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	// API contains the Gissmo API connection settings.
	API APIConfig `mapstructure:"api"`

	// Logging contains logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig contains the Gissmo API connection settings.
type APIConfig struct {
	// BaseURL is the API base URL.
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `mapstructure:"level"`

	// Format is the log format (json, console).
	Format string `mapstructure:"format"`
}

// Load reads configuration from a file and environment variables. If
// cfgFile is empty, config.yaml is searched in the standard locations.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gissmo-check")
		v.AddConfigPath("/etc/gissmo-check")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("GISSMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://gissmo.unistra.fr/api/v1")
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api base_url is required")
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout: %v", cfg.API.Timeout)
	}

	return nil
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
