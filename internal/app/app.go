package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/service"
	"github.com/hance08/octopus/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *pterm.Logger
}

// NewApp builds the logger, journal store and services from cfg, then returns
// the App and a cleanup that closes the store.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := NewLogger(cfg.Log.Level, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := ExpandPath(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg, logger)
	logger.Debug("session started", logger.Args("session", svc.SessionID, "journal", dbPath))

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			pterm.Error.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
