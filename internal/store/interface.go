package store

type Repository interface {
	// Session Operations
	CreateSession(session Session) error
	GetSession(id string) (*Session, error)

	// Entry Operations
	CreateEntries(entries []Entry) error
	GetEntries(filter EntryFilter) ([]*Entry, error)
	GetEntriesByTransaction(txID string) ([]*Entry, error)
	CountEntries(sessionID string) (int64, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
