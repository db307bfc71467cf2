package cmd

import (
	"fmt"

	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/service"
	"github.com/hance08/octopus/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	Account string
	Limit   int
	TxID    string
}

type historyRunner struct {
	svc   serviceFn
	flags *historyFlags
}

func NewHistoryCmd(svc serviceFn) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List entries recorded in the journal database",
		Long: `List journaled entries from every past session, newest first.

The journal only outlives a session when database.path is set in the config;
the default in-memory journal is discarded on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Only show entries for this account")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultHistoryLimit, "Maximum number of entries to show")
	cmd.Flags().StringVar(&flags.TxID, "tx", "", "Show every entry of one transaction")

	return cmd
}

func (r *historyRunner) Run() error {
	svc := r.svc()

	if r.flags.TxID != "" {
		entries, err := svc.Transaction.GetTransactionEntries(r.flags.TxID)
		if err != nil {
			return fmt.Errorf("failed to get transaction: %w", err)
		}
		return views.NewEntryListView().Render(entries, len(entries))
	}

	entries, err := svc.Transaction.GetHistory(service.HistoryQuery{
		Account:     r.flags.Account,
		Limit:       r.flags.Limit,
		AllSessions: true,
	})
	if err != nil {
		return err
	}

	return views.NewEntryListView().Render(entries, r.flags.Limit)
}
