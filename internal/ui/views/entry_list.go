package views

import (
	"strings"

	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/service"
	"github.com/pterm/pterm"
)

type EntryListView struct{}

func NewEntryListView() *EntryListView {
	return &EntryListView{}
}

func (v *EntryListView) Render(entries []*service.EntryDetail, limit int) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Transaction log (limit: %d)", limit)

	tableData := pterm.TableData{
		{"Time", "Transaction", "Type", "Account", "Amount", "Balance"},
	}

	for _, e := range entries {
		amount := money.FormatWithCurrency(e.Amount, e.Currency)
		kind := strings.ToUpper(e.Kind[:1]) + e.Kind[1:]

		switch e.Kind {
		case "deposit":
			kind = pterm.Green(kind)
			amount = pterm.Green(amount)
		case "withdraw":
			kind = pterm.Red(kind)
			amount = pterm.Red(amount)
		default:
			kind = pterm.Gray(kind)
		}

		tableData = append(tableData, []string{
			e.Timestamp.Format(constants.DateTimeFormat),
			shortID(e.TransactionID),
			kind,
			e.Account,
			amount,
			money.FormatWithCurrency(e.Balance, e.Currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d entries\n", len(entries))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
