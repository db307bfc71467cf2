package ledger

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Ledger owns account balances and applies transactions to them.
// It is safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*account

	journal Journal
	now     func() time.Time
	logger  *pterm.Logger
}

type Option func(*Ledger)

func WithJournal(j Journal) Option {
	return func(l *Ledger) { l.journal = j }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithLogger(logger *pterm.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[string]*account),
		now:      time.Now,
		logger:   pterm.DefaultLogger.WithWriter(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open creates an account with a non-negative starting balance.
func (l *Ledger) Open(id string, initial int64) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("%w: empty identifier", ErrInvalidAccount)
	}
	if initial < 0 {
		return Entry{}, fmt.Errorf("%w: initial balance %d is negative", ErrInvalidAmount, initial)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[id]; ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrAccountExists, id)
	}

	entry := l.newEntry(uuid.New(), EntryOpen, id, initial, initial)
	if err := l.record(entry); err != nil {
		return Entry{}, err
	}

	l.accounts[id] = &account{id: id, balance: initial}
	l.logger.Debug("account opened", l.logger.Args("account", id, "balance", initial))

	return entry, nil
}

// Deposit credits amount to id. An unknown account is opened at zero and
// credited in the same step.
func (l *Ledger) Deposit(id string, amount int64) (Entry, error) {
	entries, err := l.deposit(uuid.New(), id, amount)
	if err != nil {
		return Entry{}, err
	}
	return entries[len(entries)-1], nil
}

func (l *Ledger) Withdraw(id string, amount int64) (Entry, error) {
	return l.withdraw(uuid.New(), id, amount)
}

// Send moves amount from source to target. Both balances change together or
// not at all. The source must exist; an unknown target is opened at zero.
func (l *Ledger) Send(source, target string, amount int64) (Entry, Entry, error) {
	entries, err := l.send(uuid.New(), source, target, amount)
	if err != nil {
		return Entry{}, Entry{}, err
	}
	n := len(entries)
	return entries[n-2], entries[n-1], nil
}

// Apply dispatches a Transaction to the matching operation and returns the
// entries it produced, including the open entry of an implicitly created account.
func (l *Ledger) Apply(tx Transaction) ([]Entry, error) {
	switch tx.typ {
	case TxDeposit:
		return l.deposit(tx.id, tx.target, tx.amount)
	case TxWithdraw:
		e, err := l.withdraw(tx.id, tx.source, tx.amount)
		if err != nil {
			return nil, err
		}
		return []Entry{e}, nil
	case TxSend:
		return l.send(tx.id, tx.source, tx.target, tx.amount)
	default:
		return nil, fmt.Errorf("unsupported transaction type %q", tx.typ)
	}
}

func (l *Ledger) Balance(id string) (int64, error) {
	acc, err := l.lookup(id)
	if err != nil {
		return 0, err
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance, nil
}

// Accounts returns a snapshot of every account ordered by identifier.
func (l *Ledger) Accounts() []Account {
	l.mu.RLock()
	accs := make([]*account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		accs = append(accs, acc)
	}
	l.mu.RUnlock()

	sort.Slice(accs, func(i, j int) bool { return accs[i].id < accs[j].id })

	out := make([]Account, 0, len(accs))
	for _, acc := range accs {
		acc.mu.Lock()
		out = append(out, Account{ID: acc.id, Balance: acc.balance})
		acc.mu.Unlock()
	}
	return out
}

// Total sums all balances. It fails with ErrBalanceOverflow when the sum does
// not fit in an int64. Under concurrent sends the result is only meaningful
// once writers are quiescent.
func (l *Ledger) Total() (int64, error) {
	var total int64
	for _, acc := range l.Accounts() {
		if total > math.MaxInt64-acc.Balance {
			return 0, fmt.Errorf("%w: total of all accounts exceeds %d", ErrBalanceOverflow, int64(math.MaxInt64))
		}
		total += acc.Balance
	}
	return total, nil
}

func (l *Ledger) deposit(txID uuid.UUID, id string, amount int64) ([]Entry, error) {
	if amount <= 0 {
		return nil, l.reject(TxDeposit, fmt.Errorf("%w: %d", ErrInvalidAmount, amount))
	}

	acc, err := l.lookup(id)
	if err != nil {
		return l.depositNew(txID, id, amount)
	}
	return l.credit(txID, acc, amount)
}

func (l *Ledger) credit(txID uuid.UUID, acc *account, amount int64) ([]Entry, error) {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	if !acc.canCredit(amount) {
		return nil, l.reject(TxDeposit, fmt.Errorf("%w: %q cannot take %d more", ErrBalanceOverflow, acc.id, amount))
	}

	entry := l.newEntry(txID, EntryDeposit, acc.id, amount, acc.balance+amount)
	if err := l.record(entry); err != nil {
		return nil, err
	}

	acc.balance = entry.Balance
	l.logger.Debug("deposit applied", l.logger.Args("account", acc.id, "amount", amount, "balance", acc.balance))

	return []Entry{entry}, nil
}

// depositNew opens id and credits it under the map lock, journaling the open
// and deposit entries together.
func (l *Ledger) depositNew(txID uuid.UUID, id string, amount int64) ([]Entry, error) {
	if id == "" {
		return nil, l.reject(TxDeposit, fmt.Errorf("%w: empty identifier", ErrInvalidAccount))
	}

	l.mu.Lock()
	if acc, ok := l.accounts[id]; ok {
		l.mu.Unlock()
		return l.credit(txID, acc, amount)
	}
	defer l.mu.Unlock()

	open := l.newEntry(uuid.New(), EntryOpen, id, 0, 0)
	entry := l.newEntry(txID, EntryDeposit, id, amount, amount)
	if err := l.record(open, entry); err != nil {
		return nil, err
	}

	l.accounts[id] = &account{id: id, balance: amount}
	l.logger.Debug("account opened by deposit", l.logger.Args("account", id, "balance", amount))

	return []Entry{open, entry}, nil
}

func (l *Ledger) withdraw(txID uuid.UUID, id string, amount int64) (Entry, error) {
	if amount <= 0 {
		return Entry{}, l.reject(TxWithdraw, fmt.Errorf("%w: %d", ErrInvalidAmount, amount))
	}

	acc, err := l.lookup(id)
	if err != nil {
		return Entry{}, l.reject(TxWithdraw, err)
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if !acc.canDebit(amount) {
		return Entry{}, l.reject(TxWithdraw, fmt.Errorf("%w: %q has %d, needs %d", ErrInsufficientFunds, id, acc.balance, amount))
	}

	entry := l.newEntry(txID, EntryWithdraw, id, amount, acc.balance-amount)
	if err := l.record(entry); err != nil {
		return Entry{}, err
	}

	acc.balance = entry.Balance
	l.logger.Debug("withdraw applied", l.logger.Args("account", id, "amount", amount, "balance", acc.balance))

	return entry, nil
}

func (l *Ledger) send(txID uuid.UUID, source, target string, amount int64) ([]Entry, error) {
	if amount <= 0 {
		return nil, l.reject(TxSend, fmt.Errorf("%w: %d", ErrInvalidAmount, amount))
	}

	from, err := l.lookup(source)
	if err != nil {
		return nil, l.reject(TxSend, err)
	}
	to, err := l.lookup(target)
	if err != nil {
		return l.sendNew(txID, from, target, amount)
	}
	return l.transfer(txID, from, to, amount)
}

func (l *Ledger) transfer(txID uuid.UUID, from, to *account, amount int64) ([]Entry, error) {
	unlock := lockPair(from, to)
	defer unlock()

	if !from.canDebit(amount) {
		return nil, l.reject(TxSend, fmt.Errorf("%w: %q has %d, needs %d", ErrInsufficientFunds, from.id, from.balance, amount))
	}

	fromBalance := from.balance - amount
	toBalance := to.balance + amount
	if from == to {
		toBalance = from.balance
	} else if !to.canCredit(amount) {
		return nil, l.reject(TxSend, fmt.Errorf("%w: %q cannot take %d more", ErrBalanceOverflow, to.id, amount))
	}

	debit := l.newEntry(txID, EntryWithdraw, from.id, amount, fromBalance)
	credit := l.newEntry(txID, EntryDeposit, to.id, amount, toBalance)
	if err := l.record(debit, credit); err != nil {
		return nil, err
	}

	from.balance = fromBalance
	to.balance = toBalance
	l.logger.Debug("send applied", l.logger.Args("from", from.id, "to", to.id, "amount", amount))

	return []Entry{debit, credit}, nil
}

// sendNew debits from and opens target with the amount. The map lock is
// taken before the account lock, matching Open and depositNew.
func (l *Ledger) sendNew(txID uuid.UUID, from *account, target string, amount int64) ([]Entry, error) {
	if target == "" {
		return nil, l.reject(TxSend, fmt.Errorf("%w: empty identifier", ErrInvalidAccount))
	}

	l.mu.Lock()
	if to, ok := l.accounts[target]; ok {
		l.mu.Unlock()
		return l.transfer(txID, from, to, amount)
	}
	defer l.mu.Unlock()

	from.mu.Lock()
	defer from.mu.Unlock()

	if !from.canDebit(amount) {
		return nil, l.reject(TxSend, fmt.Errorf("%w: %q has %d, needs %d", ErrInsufficientFunds, from.id, from.balance, amount))
	}

	open := l.newEntry(uuid.New(), EntryOpen, target, 0, 0)
	debit := l.newEntry(txID, EntryWithdraw, from.id, amount, from.balance-amount)
	credit := l.newEntry(txID, EntryDeposit, target, amount, amount)
	if err := l.record(open, debit, credit); err != nil {
		return nil, err
	}

	from.balance = debit.Balance
	l.accounts[target] = &account{id: target, balance: amount}
	l.logger.Debug("send applied", l.logger.Args("from", from.id, "to", target, "amount", amount, "opened", true))

	return []Entry{open, debit, credit}, nil
}

// lockPair locks both accounts in identifier order so that opposing sends
// cannot deadlock. The same account is locked once.
func lockPair(a, b *account) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if b.id < a.id {
		first, second = b, a
	}
	first.mu.Lock()
	second.mu.Lock()

	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

func (l *Ledger) lookup(id string) (*account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}
	return acc, nil
}

func (l *Ledger) newEntry(txID uuid.UUID, kind EntryKind, id string, amount, balance int64) Entry {
	return Entry{
		ID:            uuid.New(),
		TransactionID: txID,
		Kind:          kind,
		Account:       id,
		Amount:        amount,
		Balance:       balance,
		Timestamp:     l.now(),
	}
}

func (l *Ledger) record(entries ...Entry) error {
	if l.journal == nil {
		return nil
	}
	if err := l.journal.Record(entries); err != nil {
		l.logger.Warn("journal rejected entries", l.logger.Args("error", err))
		return fmt.Errorf("failed to journal entries: %w", err)
	}
	return nil
}

func (l *Ledger) reject(typ TxType, err error) error {
	l.logger.Debug("transaction rejected", l.logger.Args("type", string(typ), "reason", err.Error()))
	return err
}
