package service

import (
	"github.com/hance08/octopus/internal/config"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/validation"
)

type AccountService struct {
	ledger    *ledger.Ledger
	config    *config.Config
	validator *validation.AccountValidator
}

func NewAccountService(l *ledger.Ledger, cfg *config.Config) *AccountService {
	return &AccountService{
		ledger:    l,
		config:    cfg,
		validator: validation.NewAccountValidator(l),
	}
}

// Validator exposes the account rules for interactive prompts.
func (as *AccountService) Validator() *validation.AccountValidator {
	return as.validator
}

func (as *AccountService) OpenAccount(name string, initial int64) (ledger.Entry, error) {
	if err := validation.ValidateAccountName(name); err != nil {
		return ledger.Entry{}, err
	}
	return as.ledger.Open(name, initial)
}

func (as *AccountService) GetBalance(name string) (int64, error) {
	return as.ledger.Balance(name)
}

func (as *AccountService) GetAccountBalanceFormatted(name string) (string, error) {
	balance, err := as.ledger.Balance(name)
	if err != nil {
		return "", err
	}
	return money.FormatWithCurrency(balance, as.config.Defaults.Currency), nil
}

func (as *AccountService) GetAllBalances() []AccountBalance {
	accounts := as.ledger.Accounts()
	out := make([]AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, AccountBalance{
			Name:     acc.ID,
			Balance:  acc.Balance,
			Currency: as.config.Defaults.Currency,
		})
	}
	return out
}

func (as *AccountService) GetTotal() (int64, error) {
	return as.ledger.Total()
}
