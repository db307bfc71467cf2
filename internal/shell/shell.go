package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/errhandler"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/service"
	"github.com/hance08/octopus/internal/ui/views"
	"github.com/hance08/octopus/internal/validation"
	"github.com/pterm/pterm"
)

// Prompter supplies user input to the shell.
type Prompter interface {
	Command() (string, error)
	Account(title string, validate func(string) error) (string, error)
	Amount(title string, validate func(string) error) (string, error)
}

type Shell struct {
	svc      *service.Service
	prompter Prompter
}

func New(svc *service.Service, prompter Prompter) *Shell {
	return &Shell{svc: svc, prompter: prompter}
}

// Run reads commands until quit, end of input or an interrupt at the command
// prompt. Rejected operations are printed and the loop continues.
func (s *Shell) Run() error {
	pterm.Info.Printf("Hello, accounting world! Balances are in %s. Type 'help' for commands.\n", s.svc.Config.Defaults.Currency)

	for {
		command, err := s.prompter.Command()
		if err != nil {
			if errhandler.IsInterrupt(err) || errors.Is(err, io.EOF) {
				pterm.Info.Println("Bye")
				return nil
			}
			return err
		}

		quit, err := s.Dispatch(command)
		switch {
		case err == nil:
		case errhandler.IsInterrupt(err):
			pterm.Warning.Println("Operation Cancelled")
		default:
			pterm.Error.Println(errhandler.Capitalize(err.Error()))
		}

		if quit {
			pterm.Info.Println("Bye")
			return nil
		}
	}
}

// Dispatch runs one shell command.
func (s *Shell) Dispatch(command string) (quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "":
		return false, nil
	case "open":
		return false, s.open()
	case "deposit":
		return false, s.deposit()
	case "withdraw":
		return false, s.withdraw()
	case "send":
		return false, s.send()
	case "balance":
		return false, s.balance()
	case "print":
		return false, views.NewAccountListView().Render(s.svc.Account.GetAllBalances())
	case "txlog":
		return false, s.txlog()
	case "help":
		return false, renderHelp()
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("command '%s' not found", command)
	}
}

func (s *Shell) open() error {
	validator := s.svc.Account.Validator()

	account, err := s.prompter.Account("Account:", validator.ValidateNewAccount)
	if err != nil {
		return err
	}
	rawAmount, err := s.prompter.Amount("Initial balance (empty for 0):", validation.ValidateInitialBalance)
	if err != nil {
		return err
	}

	var initial int64
	if strings.TrimSpace(rawAmount) != "" {
		if initial, err = money.Parse(rawAmount); err != nil {
			return err
		}
	}

	entry, err := s.svc.Account.OpenAccount(account, initial)
	if err != nil {
		return fmt.Errorf("opening %s: %w", account, err)
	}
	return views.RenderReceipt([]ledger.Entry{entry}, s.currency())
}

func (s *Shell) deposit() error {
	account, amount, err := s.accountAndAmount("Account (opened if new):", validation.ValidateAccountName)
	if err != nil {
		return err
	}

	entries, err := s.svc.Transaction.Apply(ledger.NewDeposit(account, amount))
	if err != nil {
		return fmt.Errorf("depositing %s for %s: %w", money.Format(amount), account, err)
	}
	return views.RenderReceipt(entries, s.currency())
}

func (s *Shell) withdraw() error {
	account, amount, err := s.accountAndAmount("Account:", s.svc.Account.Validator().ValidateExistingAccount)
	if err != nil {
		return err
	}

	entries, err := s.svc.Transaction.Apply(ledger.NewWithdraw(account, amount))
	if err != nil {
		return fmt.Errorf("withdrawing %s for %s: %w", money.Format(amount), account, err)
	}
	return views.RenderReceipt(entries, s.currency())
}

func (s *Shell) send() error {
	validator := s.svc.Account.Validator()

	sender, err := s.prompter.Account("Sender:", validator.ValidateExistingAccount)
	if err != nil {
		return err
	}
	recipient, err := s.prompter.Account("Recipient (opened if new):", validation.ValidateAccountName)
	if err != nil {
		return err
	}
	amount, err := s.amount()
	if err != nil {
		return err
	}

	entries, err := s.svc.Transaction.Apply(ledger.NewSend(sender, recipient, amount))
	if err != nil {
		return fmt.Errorf("sending %s from %s to %s: %w", money.Format(amount), sender, recipient, err)
	}
	return views.RenderReceipt(entries, s.currency())
}

func (s *Shell) balance() error {
	account, err := s.prompter.Account("Account:", validation.ValidateAccountName)
	if err != nil {
		return err
	}

	balance, err := s.svc.Account.GetAccountBalanceFormatted(account)
	if err != nil {
		return err
	}
	pterm.Info.Printf("%s: %s\n", account, balance)
	return nil
}

func (s *Shell) txlog() error {
	entries, err := s.svc.Transaction.GetHistory(service.HistoryQuery{Limit: constants.DefaultHistoryLimit})
	if err != nil {
		return err
	}
	return views.NewEntryListView().Render(entries, constants.DefaultHistoryLimit)
}

func (s *Shell) accountAndAmount(title string, validate func(string) error) (string, int64, error) {
	account, err := s.prompter.Account(title, validate)
	if err != nil {
		return "", 0, err
	}
	amount, err := s.amount()
	if err != nil {
		return "", 0, err
	}
	return account, amount, nil
}

func (s *Shell) amount() (int64, error) {
	raw, err := s.prompter.Amount("Amount:", validation.ValidateAmount)
	if err != nil {
		return 0, err
	}
	return money.Parse(raw)
}

func (s *Shell) currency() string {
	return s.svc.Config.Defaults.Currency
}

func renderHelp() error {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Command", "Description"},
		{"open", "Create an account with an initial balance"},
		{"deposit", "Add funds to an account, opening it if needed"},
		{"withdraw", "Take funds out of an account"},
		{"send", "Move funds to another account, opening it if needed"},
		{"balance", "Show one account's balance"},
		{"print", "Show every account"},
		{"txlog", "Show this session's transaction log"},
		{"quit", "Leave the shell"},
	}).Render()
}
