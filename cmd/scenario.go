package cmd

import (
	"fmt"

	"github.com/hance08/octopus/internal/scenario"
	"github.com/hance08/octopus/internal/ui/views"
	"github.com/spf13/cobra"
)

type scenarioRunner struct {
	svc serviceFn
}

func NewScenarioCmd(svc serviceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "Run a scripted sequence of ledger operations",
		Long: `Run a scenario file and print the outcome of every step.

Without a file the built-in walkthrough runs: open A with 100, deposit 50,
a rejected withdrawal of 200, open B, send 150 from A to B, then deposits
and sends that open new accounts.

Steps may declare "expect" (ok, invalid_amount, insufficient_funds,
account_not_found, account_exists, balance_overflow, invalid_account) and
balance steps may declare "expect_balance". The command fails only when a
step does not match its expectation.

Example file:
  name: basic
  steps:
    - {op: open, account: A, amount: "100"}
    - {op: withdraw, account: A, amount: "200", expect: insufficient_funds}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &scenarioRunner{svc: svc}
			return runner.Run(args)
		},
	}
}

func (r *scenarioRunner) Run(args []string) error {
	var (
		sc  *scenario.Scenario
		err error
	)
	if len(args) == 1 {
		sc, err = scenario.Load(args[0])
	} else {
		sc, err = scenario.Builtin()
	}
	if err != nil {
		return err
	}

	svc := r.svc()
	report := scenario.NewRunner(svc).Run(sc)

	if err := views.RenderScenarioReport(report, svc.Config.Defaults.Currency); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("scenario %q: %d step(s) did not match expectations", report.Name, failed)
	}
	return nil
}
