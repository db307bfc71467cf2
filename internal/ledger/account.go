package ledger

import (
	"math"
	"sync"
)

type Account struct {
	ID      string
	Balance int64
}

type account struct {
	mu      sync.Mutex
	id      string
	balance int64
}

// canCredit reports whether amount can be added without overflowing int64.
func (a *account) canCredit(amount int64) bool {
	return a.balance <= math.MaxInt64-amount
}

func (a *account) canDebit(amount int64) bool {
	return a.balance >= amount
}
