// Package config defines the application configuration structure and
// loading logic. Configuration is read from environment variables with the
// KANBAN_ prefix and optionally from a config.yaml file, then validated.
package config
