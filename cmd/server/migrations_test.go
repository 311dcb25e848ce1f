package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := runMigrations(testConfig(), "sideways")
	assert.ErrorContains(t, err, "unknown migration command")
}

func TestRunMigrationsRequiresDatabaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.Database.URL = ""

	err := runMigrations(cfg, "up")
	assert.ErrorContains(t, err, "database URL is empty")
}
