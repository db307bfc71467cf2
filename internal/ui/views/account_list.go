package views

import (
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/service"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []service.AccountBalance) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"Account", "Balance"}}

	balances := make([]int64, 0, len(accounts))
	for _, acc := range accounts {
		balance := money.FormatWithCurrency(acc.Balance, acc.Currency)

		// empty accounts are dimmed
		name := acc.Name
		if acc.Balance == 0 {
			name = pterm.Gray(name)
			balance = pterm.Gray(balance)
		} else {
			balance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{name, balance})
		balances = append(balances, acc.Balance)
	}

	pterm.DefaultSection.Printf("Ledger")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, %s\n", len(accounts), money.FormatTotal(balances, accounts[0].Currency))

	return nil
}
