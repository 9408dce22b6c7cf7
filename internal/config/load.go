package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all configuration environment variables,
// e.g. HELIXGATE_DATABASE_URL maps to the database.url key.
const envPrefix = "HELIXGATE"

// Load reads configuration from environment variables, applies defaults,
// and validates the result.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for settings that are safe to leave unset.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface nested keys to Unmarshal, so
	// every key is bound explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
