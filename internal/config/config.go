package config

import "github.com/hance08/octopus/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Path of the journal database; empty keeps the journal in memory.
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: constants.DefaultLogLevel},
	}
}

// DatabasePath resolves the journal location.
func (c *Config) DatabasePath() string {
	if c.Database.Path == "" {
		return constants.MemoryDatabase
	}
	return c.Database.Path
}
