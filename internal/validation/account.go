package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/money"
)

// AccountLookup is the read side of the ledger used to check existence.
type AccountLookup interface {
	Balance(id string) (int64, error)
}

// AccountValidator handles account identifier validation
type AccountValidator struct {
	lookup AccountLookup
}

func NewAccountValidator(lookup AccountLookup) *AccountValidator {
	return &AccountValidator{lookup: lookup}
}

// ValidateAccountName checks the identifier format without touching the ledger.
func ValidateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: account name can't be empty", ledger.ErrInvalidAccount)
	}

	if len(name) > constants.MaxAccountLen {
		return fmt.Errorf("%w: account name too long (max %d characters)", ledger.ErrInvalidAccount, constants.MaxAccountLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: account name %q can't contain spaces or control characters", ledger.ErrInvalidAccount, name)
		}
	}

	return nil
}

// ValidateNewAccount checks the format and that the name is not taken.
func (v *AccountValidator) ValidateNewAccount(name string) error {
	if err := ValidateAccountName(name); err != nil {
		return err
	}

	if _, err := v.lookup.Balance(name); err == nil {
		return fmt.Errorf("%w: %q", ledger.ErrAccountExists, name)
	}

	return nil
}

// ValidateExistingAccount checks the format and that the account is open.
func (v *AccountValidator) ValidateExistingAccount(name string) error {
	if err := ValidateAccountName(name); err != nil {
		return err
	}

	if _, err := v.lookup.Balance(name); err != nil {
		return err
	}

	return nil
}

// ValidateCurrency validates an ISO 4217 style currency code
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}

// ValidateAmount validates a positive major-unit amount string.
func ValidateAmount(input string) error {
	amount, err := money.Parse(input)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ledger.ErrInvalidAmount)
	}
	return nil
}

// ValidateInitialBalance validates an opening balance; empty means zero.
func ValidateInitialBalance(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	amount, err := money.Parse(input)
	if err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: initial balance can't be negative", ledger.ErrInvalidAmount)
	}
	return nil
}
