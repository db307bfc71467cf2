package cmd

import (
	"os"

	"github.com/hance08/octopus/internal/app"
	"github.com/hance08/octopus/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct{}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "info",
		Short:       "Display application information",
		Long:        `Display current configuration, journal path, and system details.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	expandedDBPath, _ := app.ExpandPath(cfg.Database.Path)

	dbExists := false
	if expandedDBPath != "" {
		if _, err := os.Stat(expandedDBPath); err == nil {
			dbExists = true
		}
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          expandedDBPath,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		LogLevel:        cfg.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
