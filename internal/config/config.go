package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings,
// including the knobs for the connection lifecycle manager.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// Serverless selects the serverless connection profile: a small pool,
	// a longer connect timeout, and no idle-close timer. Persistent
	// deployments leave this false.
	Serverless bool `mapstructure:"serverless"`

	// MaxIdleTime is how long an unused connection is kept open before the
	// manager closes it. Ignored when Serverless is true.
	MaxIdleTime time.Duration `mapstructure:"max_idle_time" validate:"min=0"`

	// Retry policy for the initial connection attempt.
	MaxRetries      int           `mapstructure:"max_retries"      validate:"min=0"`
	RetryBaseDelay  time.Duration `mapstructure:"retry_base_delay" validate:"min=0"`
	RetryMaxDelay   time.Duration `mapstructure:"retry_max_delay"  validate:"min=0"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"  validate:"min=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0,lte=1440"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0,lte=43200"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"omitempty,gte=4,lte=31"`
}
