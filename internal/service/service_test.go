package service

import (
	"errors"
	"os"
	"testing"

	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	repo, err := store.NewStore(constants.MemoryDatabase, os.DirFS("../.."), nil)
	if err != nil {
		t.Fatalf("NewStore err=%v", err)
	}
	t.Cleanup(func() { repo.Close() })

	svc := NewService(repo, config.NewDefault(), nil)
	return svc, repo
}

func TestOperationsAreJournaled(t *testing.T) {
	svc, repo := newTestService(t)

	if _, err := svc.Account.OpenAccount("alice", 10000); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Account.OpenAccount("bob", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Transaction.Deposit("alice", 5000); err != nil {
		t.Fatal(err)
	}
	entries, err := svc.Transaction.Send("alice", "bob", 2500)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Transaction.Withdraw("bob", 99999); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}

	count, err := repo.CountEntries(svc.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("journaled entries=%d want=5", count)
	}

	history, err := svc.Transaction.GetHistory(HistoryQuery{Account: "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 || history[0].Kind != "deposit" || history[0].Balance != 2500 || history[0].Currency != "USD" {
		t.Fatalf("bob history=%+v", history)
	}

	legs, err := svc.Transaction.GetTransactionEntries(entries[0].TransactionID.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(legs) != 2 || legs[0].Account != "alice" || legs[1].Account != "bob" {
		t.Fatalf("legs=%+v", legs)
	}
}

func TestBalancesAndFormatting(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Account.OpenAccount("b", 150); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Account.OpenAccount("a", 1); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Account.GetAccountBalanceFormatted("b")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.50 USD" {
		t.Fatalf("formatted=%q", got)
	}

	all := svc.Account.GetAllBalances()
	if len(all) != 2 || all[0].Name != "a" || all[1].Name != "b" {
		t.Fatalf("balances=%+v", all)
	}
	if total, err := svc.Account.GetTotal(); err != nil || total != 151 {
		t.Fatalf("total=%d err=%v want=151", total, err)
	}

	if _, err := svc.Account.OpenAccount("has space", 0); !errors.Is(err, ledger.ErrInvalidAccount) {
		t.Fatalf("want ErrInvalidAccount, got %v", err)
	}
	if _, err := svc.Account.GetBalance("ghost"); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestApplyTransaction(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Account.OpenAccount("a", 0); err != nil {
		t.Fatal(err)
	}
	entries, err := svc.Transaction.Apply(ledger.NewDeposit("a", 42))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Balance != 42 {
		t.Fatalf("entries=%+v", entries)
	}
}

func TestJournalFailureRejectsOperation(t *testing.T) {
	svc, repo := newTestService(t)

	if _, err := svc.Account.OpenAccount("a", 100); err != nil {
		t.Fatal(err)
	}
	if err := repo.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Transaction.Withdraw("a", 10); err == nil {
		t.Fatal("withdraw should fail once the journal is closed")
	}
	balance, err := svc.Account.GetBalance("a")
	if err != nil {
		t.Fatal(err)
	}
	if balance != 100 {
		t.Fatalf("balance=%d want=100", balance)
	}
}

func TestHistoryIsScopedToSession(t *testing.T) {
	repo, err := store.NewStore(constants.MemoryDatabase, os.DirFS("../.."), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	first := NewService(repo, config.NewDefault(), nil)
	if _, err := first.Account.OpenAccount("a", 1); err != nil {
		t.Fatal(err)
	}

	second := NewService(repo, config.NewDefault(), nil)
	if _, err := second.Account.OpenAccount("a", 2); err != nil {
		t.Fatal(err)
	}

	mine, err := second.Transaction.GetHistory(HistoryQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Balance != 2 {
		t.Fatalf("session history=%+v", mine)
	}

	all, err := second.Transaction.GetHistory(HistoryQuery{AllSessions: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("all history=%d want=2", len(all))
	}
}

func TestSessionIsWrittenWithFirstEntry(t *testing.T) {
	svc, repo := newTestService(t)

	if _, err := svc.Transaction.GetHistory(HistoryQuery{AllSessions: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetSession(svc.SessionID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("read-only use created a session, err=%v", err)
	}

	if _, err := svc.Transaction.Withdraw("ghost", 1); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if _, err := repo.GetSession(svc.SessionID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("rejected operation created a session, err=%v", err)
	}

	if _, err := svc.Account.OpenAccount("a", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Account.OpenAccount("b", 2); err != nil {
		t.Fatal(err)
	}
	session, err := repo.GetSession(svc.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if session.Currency != "USD" {
		t.Fatalf("session=%+v", session)
	}
}

func TestDepositAndSendOpenAccounts(t *testing.T) {
	svc, repo := newTestService(t)

	entry, err := svc.Transaction.Deposit("carol", 300)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Kind != ledger.EntryDeposit || entry.Balance != 300 {
		t.Fatalf("entry=%+v", entry)
	}

	entries, err := svc.Transaction.Send("carol", "dave", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Kind != ledger.EntryOpen || entries[0].Account != "dave" {
		t.Fatalf("entries=%+v", entries)
	}

	count, err := repo.CountEntries(svc.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("journaled entries=%d want=5", count)
	}

	if _, err := svc.Transaction.Deposit("has space", 1); !errors.Is(err, ledger.ErrInvalidAccount) {
		t.Fatalf("want ErrInvalidAccount, got %v", err)
	}
	if _, err := svc.Transaction.Send("carol", "", 1); !errors.Is(err, ledger.ErrInvalidAccount) {
		t.Fatalf("want ErrInvalidAccount, got %v", err)
	}
	if _, err := svc.Transaction.Send("nobody", "carol", 1); !errors.Is(err, ledger.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
