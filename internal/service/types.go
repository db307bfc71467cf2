package service

import "time"

type AccountBalance struct {
	Name     string
	Balance  int64
	Currency string
}

// EntryDetail is a journaled entry ready for display
type EntryDetail struct {
	ID            string
	TransactionID string
	SessionID     string
	Kind          string
	Account       string
	Amount        int64
	Balance       int64
	Currency      string
	Timestamp     time.Time
}

type HistoryQuery struct {
	Account     string
	Limit       int
	AllSessions bool
}
