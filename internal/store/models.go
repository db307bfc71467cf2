package store

type Session struct {
	ID        string
	StartedAt int64
	Currency  string
}

type Entry struct {
	ID            string
	SessionID     string
	TransactionID string
	Kind          string
	Account       string
	Amount        int64
	Balance       int64
	Currency      string
	Timestamp     int64 // unix nanoseconds
}

// EntryFilter narrows GetEntries. Zero values mean "any".
type EntryFilter struct {
	SessionID string
	Account   string
	Limit     int
}
