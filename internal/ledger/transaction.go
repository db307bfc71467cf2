package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
	TxSend     TxType = "send"
)

// Transaction is an intended change to the ledger. It is immutable once built:
// Apply either accepts it and mutates balances, or rejects it and changes nothing.
type Transaction struct {
	id     uuid.UUID
	typ    TxType
	source string
	target string
	amount int64
}

func NewDeposit(target string, amount int64) Transaction {
	return Transaction{id: uuid.New(), typ: TxDeposit, target: target, amount: amount}
}

func NewWithdraw(source string, amount int64) Transaction {
	return Transaction{id: uuid.New(), typ: TxWithdraw, source: source, amount: amount}
}

func NewSend(source, target string, amount int64) Transaction {
	return Transaction{id: uuid.New(), typ: TxSend, source: source, target: target, amount: amount}
}

func (t Transaction) ID() uuid.UUID  { return t.id }
func (t Transaction) Type() TxType   { return t.typ }
func (t Transaction) Source() string { return t.source }
func (t Transaction) Target() string { return t.target }
func (t Transaction) Amount() int64  { return t.amount }

func (t Transaction) String() string {
	switch t.typ {
	case TxDeposit:
		return fmt.Sprintf("deposit %d to %s", t.amount, t.target)
	case TxWithdraw:
		return fmt.Sprintf("withdraw %d from %s", t.amount, t.source)
	case TxSend:
		return fmt.Sprintf("send %d from %s to %s", t.amount, t.source, t.target)
	default:
		return fmt.Sprintf("unknown transaction %s", t.id)
	}
}

type EntryKind string

const (
	EntryOpen     EntryKind = "open"
	EntryDeposit  EntryKind = "deposit"
	EntryWithdraw EntryKind = "withdraw"
)

// Entry records one applied side of a transaction. A send yields a withdraw
// entry on the source and a deposit entry on the target with the same TransactionID.
type Entry struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Kind          EntryKind
	Account       string
	Amount        int64
	Balance       int64 // balance after the entry was applied
	Timestamp     time.Time
}

// Journal receives entries before they take effect. Returning an error rejects
// the whole operation.
type Journal interface {
	Record(entries []Entry) error
}
