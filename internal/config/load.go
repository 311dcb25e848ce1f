package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. The database URL and JWT secret have no defaults on
	// purpose: they must come from the environment.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.serverless", false)
	v.SetDefault("database.max_idle_time", 30*time.Minute)
	v.SetDefault("database.max_retries", 3)
	v.SetDefault("database.retry_base_delay", time.Second)
	v.SetDefault("database.retry_max_delay", 10*time.Second)
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 7*24*60)
	v.SetDefault("auth.bcrypt_cost", 10)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing config file is fine; environment variables may carry
		// the full configuration.
	}

	// Environment variables with the KANBAN_ prefix override file values,
	// e.g. KANBAN_DATABASE_URL maps to database.url.
	v.SetEnvPrefix("KANBAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly so Unmarshal sees
	// their environment values.
	v.MustBindEnv("database.url")
	v.MustBindEnv("auth.jwt_secret")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
