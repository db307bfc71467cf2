package cmd

import (
	"github.com/hance08/octopus/internal/shell"
	"github.com/hance08/octopus/internal/ui/prompts"
	"github.com/spf13/cobra"
)

type shellRunner struct {
	svc serviceFn
}

func NewShellCmd(svc serviceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Work with the ledger interactively",
		Long: `Start an interactive session. Accounts live only for the duration of the session.

Commands: open, deposit, withdraw, send, balance, print, txlog, help, quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &shellRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *shellRunner) Run() error {
	return shell.New(r.svc(), prompts.NewTerminal()).Run()
}
