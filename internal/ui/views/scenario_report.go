package views

import (
	"fmt"

	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/scenario"
	"github.com/hance08/octopus/internal/ui"
	"github.com/pterm/pterm"
)

func RenderScenarioReport(report *scenario.Report, currency string) error {
	ui.PrintL1Title("Scenario: %s", report.Name)
	pterm.Println()

	tableData := pterm.TableData{
		{"#", "Step", "Outcome", "Balance", "Check"},
	}

	for _, res := range report.Results {
		outcome := pterm.Green(res.Outcome)
		if res.Err != nil {
			outcome = pterm.Yellow(res.Outcome)
		}

		balance := "-"
		if res.Err == nil {
			balance = money.FormatWithCurrency(res.Balance, currency)
		}

		check := pterm.Green("✓")
		if !res.Passed() {
			check = pterm.Red("✗ " + res.Mismatch)
		}

		tableData = append(tableData, []string{
			fmt.Sprint(res.Index),
			res.Step.String(),
			outcome,
			balance,
			check,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Final balances")
	if err := NewAccountListView().Render(report.Balances); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		pterm.Error.Printf("%d of %d steps did not match expectations\n", failed, len(report.Results))
	} else {
		pterm.Success.Printf("All %d steps matched expectations\n", len(report.Results))
	}
	return nil
}
