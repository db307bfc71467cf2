package service

import (
	"fmt"
	"time"

	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/store"
	"github.com/hance08/octopus/internal/validation"
)

type TransactionService struct {
	ledger    *ledger.Ledger
	repo      store.Repository
	config    *config.Config
	sessionID string
}

func NewTransactionService(l *ledger.Ledger, repo store.Repository, cfg *config.Config, sessionID string) *TransactionService {
	return &TransactionService{ledger: l, repo: repo, config: cfg, sessionID: sessionID}
}

// Deposit credits account, opening it first when it does not exist yet.
func (ts *TransactionService) Deposit(account string, amount int64) (ledger.Entry, error) {
	entries, err := ts.Apply(ledger.NewDeposit(account, amount))
	if err != nil {
		return ledger.Entry{}, err
	}
	return entries[len(entries)-1], nil
}

func (ts *TransactionService) Withdraw(account string, amount int64) (ledger.Entry, error) {
	return ts.ledger.Withdraw(account, amount)
}

func (ts *TransactionService) Send(source, target string, amount int64) ([]ledger.Entry, error) {
	return ts.Apply(ledger.NewSend(source, target, amount))
}

// Apply checks the name of any account the transaction may open, then hands
// it to the ledger.
func (ts *TransactionService) Apply(tx ledger.Transaction) ([]ledger.Entry, error) {
	if tx.Type() == ledger.TxDeposit || tx.Type() == ledger.TxSend {
		if err := validation.ValidateAccountName(tx.Target()); err != nil {
			return nil, err
		}
	}
	return ts.ledger.Apply(tx)
}

// GetHistory lists journaled entries, newest first. Only the current run is
// included unless AllSessions is set.
func (ts *TransactionService) GetHistory(q HistoryQuery) ([]*EntryDetail, error) {
	filter := store.EntryFilter{Account: q.Account, Limit: q.Limit}
	if !q.AllSessions {
		filter.SessionID = ts.sessionID
	}

	rows, err := ts.repo.GetEntries(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return toDetails(rows), nil
}

// GetTransactionEntries returns every entry one transaction produced.
func (ts *TransactionService) GetTransactionEntries(txID string) ([]*EntryDetail, error) {
	rows, err := ts.repo.GetEntriesByTransaction(txID)
	if err != nil {
		return nil, err
	}
	return toDetails(rows), nil
}

func toDetails(rows []*store.Entry) []*EntryDetail {
	details := make([]*EntryDetail, 0, len(rows))
	for _, r := range rows {
		details = append(details, &EntryDetail{
			ID:            r.ID,
			TransactionID: r.TransactionID,
			SessionID:     r.SessionID,
			Kind:          r.Kind,
			Account:       r.Account,
			Amount:        r.Amount,
			Balance:       r.Balance,
			Currency:      r.Currency,
			Timestamp:     time.Unix(0, r.Timestamp),
		})
	}
	return details
}
