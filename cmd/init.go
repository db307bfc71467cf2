package cmd

import (
	"fmt"

	"github.com/hance08/octopus/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Choose the ledger currency and save it to the config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard()
		},
	}
}

func runInitWizard() error {
	currency, err := prompts.PromptInitCurrency(cfg.Defaults.Currency)
	if err != nil {
		return err
	}

	if currency != cfg.Defaults.Currency {
		ok, err := prompts.PromptConfirm(fmt.Sprintf("Change currency from %s to %s?", cfg.Defaults.Currency, currency), true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Configuration unchanged")
			return nil
		}
	}

	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Ledger currency set to: %s\n", currency)

	return nil
}
