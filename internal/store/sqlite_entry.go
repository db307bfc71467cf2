package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateSession(session Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, started_at, currency)
		VALUES (?, ?, ?);
	`, session.ID, session.StartedAt, session.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert session %s: %w", session.ID, mapConstraint(err))
	}
	return nil
}

func (s *Store) GetSession(id string) (*Session, error) {
	var session Session
	err := s.db.QueryRow(`
		SELECT id, started_at, currency
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &session.StartedAt, &session.Currency)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query session %s: %w", id, err)
	}
	return &session, nil
}

// CreateEntries inserts entries in order. Callers wanting all-or-nothing
// semantics wrap it in ExecTx.
func (s *Store) CreateEntries(entries []Entry) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO entries (id, session_id, transaction_id, kind, account, amount, balance, currency, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry SQL: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(e.ID, e.SessionID, e.TransactionID, e.Kind, e.Account, e.Amount, e.Balance, e.Currency, e.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert entry (account: %s): %w", e.Account, mapConstraint(err))
		}
	}

	s.logger.Trace("entries journaled", s.logger.Args("count", len(entries)))
	return nil
}

func (s *Store) GetEntries(filter EntryFilter) ([]*Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var (
		conds []string
		args  []any
	)
	if filter.SessionID != "" {
		conds = append(conds, "session_id = ?")
		args = append(args, filter.SessionID)
	}
	if filter.Account != "" {
		conds = append(conds, "account = ?")
		args = append(args, filter.Account)
	}

	query := `
		SELECT id, session_id, transaction_id, kind, account, amount, balance, currency, timestamp
		FROM entries`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY seq DESC\n\t\tLIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *Store) GetEntriesByTransaction(txID string) ([]*Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, transaction_id, kind, account, amount, balance, currency, timestamp
		FROM entries
		WHERE transaction_id = ?
		ORDER BY seq
	`, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("transaction %s: %w", txID, ErrRecordNotFound)
	}
	return entries, nil
}

func (s *Store) CountEntries(sessionID string) (int64, error) {
	var count int64
	var err error
	if sessionID == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM entries WHERE session_id = ?`, sessionID).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		err := rows.Scan(
			&e.ID, &e.SessionID, &e.TransactionID,
			&e.Kind, &e.Account, &e.Amount,
			&e.Balance, &e.Currency, &e.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}
	return entries, nil
}

func mapConstraint(err error) error {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %v", ErrEntryExists, err)
		}
		if sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
	}
	return err
}
