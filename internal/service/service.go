package service

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/store"
	"github.com/pterm/pterm"
)

// Service bundles the in-memory ledger with its journal for one run of the program.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
	SessionID   string
}

// NewService starts a session for one run. Nothing is written to repo until
// the first ledger operation is journaled.
func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) *Service {
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}

	session := store.Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now().Unix(),
		Currency:  cfg.Defaults.Currency,
	}
	l := ledger.New(
		ledger.WithJournal(newJournal(repo, session)),
		ledger.WithLogger(logger),
	)

	return &Service{
		Account:     NewAccountService(l, cfg),
		Transaction: NewTransactionService(l, repo, cfg, session.ID),
		Config:      cfg,
		SessionID:   session.ID,
	}
}
