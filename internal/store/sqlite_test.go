package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/octopus/internal/constants"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := NewStore(path, os.DirFS("../.."), nil)
	if err != nil {
		t.Fatalf("NewStore err=%v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedSession(t *testing.T, s *Store, id string) {
	t.Helper()
	if err := s.CreateSession(Session{ID: id, StartedAt: 1, Currency: "USD"}); err != nil {
		t.Fatalf("CreateSession err=%v", err)
	}
}

func entry(id, session, tx, kind, account string, amount, balance int64) Entry {
	return Entry{
		ID: id, SessionID: session, TransactionID: tx,
		Kind: kind, Account: account, Amount: amount, Balance: balance,
		Currency: "USD", Timestamp: 1,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t, constants.MemoryDatabase)
	seedSession(t, s, "s1")

	got, err := s.GetSession("s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Currency != "USD" || got.StartedAt != 1 {
		t.Fatalf("session=%+v", got)
	}

	if _, err := s.GetSession("missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if err := s.CreateSession(Session{ID: "s1", Currency: "USD"}); !errors.Is(err, ErrEntryExists) {
		t.Fatalf("want ErrEntryExists on duplicate session, got %v", err)
	}
}

func TestEntriesFilterAndOrder(t *testing.T) {
	s := newTestStore(t, constants.MemoryDatabase)
	seedSession(t, s, "s1")
	seedSession(t, s, "s2")

	err := s.CreateEntries([]Entry{
		entry("e1", "s1", "t1", "open", "alice", 100, 100),
		entry("e2", "s1", "t2", "withdraw", "alice", 40, 60),
		entry("e3", "s1", "t2", "deposit", "bob", 40, 40),
		entry("e4", "s2", "t3", "open", "alice", 5, 5),
	})
	if err != nil {
		t.Fatal(err)
	}

	all, err := s.GetEntries(EntryFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 || all[0].ID != "e4" || all[3].ID != "e1" {
		t.Fatalf("want newest first, got %d entries starting %s", len(all), all[0].ID)
	}

	alice, err := s.GetEntries(EntryFilter{SessionID: "s1", Account: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if len(alice) != 2 {
		t.Fatalf("alice entries=%d want=2", len(alice))
	}

	limited, err := s.GetEntries(EntryFilter{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited entries=%d want=1", len(limited))
	}

	legs, err := s.GetEntriesByTransaction("t2")
	if err != nil {
		t.Fatal(err)
	}
	if len(legs) != 2 || legs[0].Kind != "withdraw" || legs[1].Kind != "deposit" {
		t.Fatalf("legs=%+v", legs)
	}
	if _, err := s.GetEntriesByTransaction("nope"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}

	count, err := s.CountEntries("s1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count=%d want=3", count)
	}
}

func TestEntryConstraints(t *testing.T) {
	s := newTestStore(t, constants.MemoryDatabase)
	seedSession(t, s, "s1")

	if err := s.CreateEntries([]Entry{entry("e1", "s1", "t1", "open", "a", 1, 1)}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"duplicate id", entry("e1", "s1", "t9", "open", "a", 1, 1), ErrEntryExists},
		{"unknown kind", entry("e2", "s1", "t9", "refund", "a", 1, 1), ErrConstraintViolation},
		{"negative balance", entry("e3", "s1", "t9", "withdraw", "a", 1, -1), ErrConstraintViolation},
		{"unknown session", entry("e4", "ghost", "t9", "open", "a", 1, 1), ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.CreateEntries([]Entry{tt.entry}); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want=%v", err, tt.want)
			}
		})
	}
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t, constants.MemoryDatabase)
	seedSession(t, s, "s1")

	err := s.ExecTx(func(r Repository) error {
		if err := r.CreateEntries([]Entry{entry("e1", "s1", "t1", "open", "a", 1, 1)}); err != nil {
			return err
		}
		if err := r.ExecTx(func(Repository) error { return nil }); err == nil {
			return fmt.Errorf("nested ExecTx should fail")
		}
		return r.CreateEntries([]Entry{entry("e1", "s1", "t1", "open", "a", 1, 1)})
	})
	if !errors.Is(err, ErrEntryExists) {
		t.Fatalf("want ErrEntryExists, got %v", err)
	}

	count, err := s.CountEntries("")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("rolled back tx left %d entries", count)
	}
}

func TestFileDatabaseReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	s, err := NewStore(path, os.DirFS("../.."), nil)
	if err != nil {
		t.Fatal(err)
	}
	seedSession(t, s, "s1")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := newTestStore(t, path)
	if _, err := reopened.GetSession("s1"); err != nil {
		t.Fatalf("session should survive reopen, err=%v", err)
	}
}
