package views

import (
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/ui"
	"github.com/pterm/pterm"
)

// RenderReceipt shows the entries an accepted operation produced.
func RenderReceipt(entries []ledger.Entry, currency string) error {
	if len(entries) == 0 {
		return nil
	}

	tableData := pterm.TableData{
		{"Account", "Type", "Amount", "Balance"},
	}

	for _, e := range entries {
		amount := money.FormatWithCurrency(e.Amount, currency)

		var typeStr string
		switch e.Kind {
		case ledger.EntryDeposit:
			typeStr = pterm.Green("Credit +")
		case ledger.EntryWithdraw:
			typeStr = pterm.Red("Debit -")
		default:
			typeStr = pterm.Gray("Open")
		}

		tableData = append(tableData, []string{
			e.Account,
			typeStr,
			amount,
			money.FormatWithCurrency(e.Balance, currency),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s applied\n", entries[0].TransactionID)
	ui.Separator()
	return nil
}
