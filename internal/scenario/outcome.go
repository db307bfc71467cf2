package scenario

import (
	"errors"

	"github.com/hance08/octopus/internal/ledger"
)

const (
	CodeOK                = "ok"
	CodeInvalidAmount     = "invalid_amount"
	CodeInsufficientFunds = "insufficient_funds"
	CodeAccountNotFound   = "account_not_found"
	CodeAccountExists     = "account_exists"
	CodeBalanceOverflow   = "balance_overflow"
	CodeInvalidAccount    = "invalid_account"
	CodeError             = "error"
)

var codes = []struct {
	err  error
	code string
}{
	{ledger.ErrInvalidAmount, CodeInvalidAmount},
	{ledger.ErrInsufficientFunds, CodeInsufficientFunds},
	{ledger.ErrAccountNotFound, CodeAccountNotFound},
	{ledger.ErrAccountExists, CodeAccountExists},
	{ledger.ErrBalanceOverflow, CodeBalanceOverflow},
	{ledger.ErrInvalidAccount, CodeInvalidAccount},
}

// OutcomeCode maps an operation result onto its scenario outcome code.
func OutcomeCode(err error) string {
	if err == nil {
		return CodeOK
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeError
}

func isKnownCode(code string) bool {
	if code == CodeOK {
		return true
	}
	for _, c := range codes {
		if c.code == code {
			return true
		}
	}
	return false
}
