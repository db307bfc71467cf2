package service

import (
	"sync"

	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/store"
)

// journal writes ledger entries to the store, all-or-nothing per operation.
// The session row is inserted with the first batch, so read-only runs leave
// no trace in the database.
type journal struct {
	repo    store.Repository
	session store.Session

	mu      sync.Mutex
	started bool
}

func newJournal(repo store.Repository, session store.Session) *journal {
	return &journal{repo: repo, session: session}
}

func (j *journal) Record(entries []ledger.Entry) error {
	rows := make([]store.Entry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, store.Entry{
			ID:            e.ID.String(),
			SessionID:     j.session.ID,
			TransactionID: e.TransactionID.String(),
			Kind:          string(e.Kind),
			Account:       e.Account,
			Amount:        e.Amount,
			Balance:       e.Balance,
			Currency:      j.session.Currency,
			Timestamp:     e.Timestamp.UnixNano(),
		})
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	err := j.repo.ExecTx(func(r store.Repository) error {
		if !j.started {
			if err := r.CreateSession(j.session); err != nil {
				return err
			}
		}
		return r.CreateEntries(rows)
	})
	if err != nil {
		return err
	}

	j.started = true
	return nil
}
