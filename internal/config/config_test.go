package config

import (
	"testing"

	"github.com/hance08/octopus/internal/constants"
)

func TestDefaults(t *testing.T) {
	cfg := NewDefault()
	if cfg.Defaults.Currency != "USD" {
		t.Fatalf("currency=%q want=USD", cfg.Defaults.Currency)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level=%q want=warn", cfg.Log.Level)
	}
	if got := cfg.DatabasePath(); got != constants.MemoryDatabase {
		t.Fatalf("DatabasePath()=%q want in-memory", got)
	}

	cfg.Database.Path = "/tmp/journal.db"
	if got := cfg.DatabasePath(); got != "/tmp/journal.db" {
		t.Fatalf("DatabasePath()=%q", got)
	}
}
