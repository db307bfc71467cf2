package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/octopus/internal/app"
	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/errhandler"
	"github.com/hance08/octopus/internal/service"
	"github.com/hance08/octopus/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skipAppAnnotation marks commands that run without a ledger session.
const skipAppAnnotation = "octopus/skip-app"

var (
	cfgFile     string
	cfg         *config.Config
	application *app.App
	cleanup     func()
)

type serviceFn func() *service.Service

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	err := NewRootCmd(migrations).Execute()

	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd(migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "octopus is a minimal accounting ledger",
		Long: `octopus keeps account balances in memory and applies deposits,
withdrawals and transfers to them, rejecting anything that would overdraw an account.

Run a scripted scenario with "octopus scenario" or work interactively with "octopus shell".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if cmd.Annotations[skipAppAnnotation] != "" {
				return nil
			}

			a, closeFn, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			application, cleanup = a, closeFn
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	svc := func() *service.Service { return application.Service }

	rootCmd.AddCommand(NewShellCmd(svc))
	rootCmd.AddCommand(NewScenarioCmd(svc))
	rootCmd.AddCommand(NewHistoryCmd(svc))
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

func initConfig() error {
	defaults := config.NewDefault()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(constants.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.Defaults.Currency = strings.ToUpper(strings.TrimSpace(cfg.Defaults.Currency))
	if err := validation.ValidateCurrency(cfg.Defaults.Currency); err != nil {
		return fmt.Errorf("invalid defaults.currency: %w", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
