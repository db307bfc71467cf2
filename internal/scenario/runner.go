package scenario

import (
	"fmt"
	"strings"

	"github.com/hance08/octopus/internal/ledger"
	"github.com/hance08/octopus/internal/money"
	"github.com/hance08/octopus/internal/service"
)

type StepResult struct {
	Index   int
	Step    Step
	Outcome string
	Err     error
	Entries []ledger.Entry
	Balance int64

	// Mismatch explains why the step did not meet its expectation.
	Mismatch string
}

func (r StepResult) Passed() bool {
	return r.Mismatch == ""
}

type Report struct {
	Name     string
	Results  []StepResult
	Balances []service.AccountBalance
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

type Runner struct {
	svc *service.Service
}

func NewRunner(svc *service.Service) *Runner {
	return &Runner{svc: svc}
}

// Run executes every step in order. Business errors are recorded as outcomes
// and never stop the run.
func (r *Runner) Run(sc *Scenario) *Report {
	report := &Report{Name: sc.Name}

	for i, step := range sc.Steps {
		res := r.runStep(step)
		res.Index = i + 1
		res.Step = step
		res.Outcome = OutcomeCode(res.Err)
		res.Mismatch = check(step, res)
		report.Results = append(report.Results, res)
	}

	report.Balances = r.svc.Account.GetAllBalances()
	return report
}

func (r *Runner) runStep(step Step) StepResult {
	var res StepResult

	if step.Op == OpBalance {
		res.Balance, res.Err = r.svc.Account.GetBalance(step.Account)
		return res
	}

	amount, err := parseStepAmount(step)
	if err != nil {
		res.Err = err
		return res
	}

	switch step.Op {
	case OpOpen:
		var e ledger.Entry
		e, res.Err = r.svc.Account.OpenAccount(step.Account, amount)
		if res.Err == nil {
			res.Entries = []ledger.Entry{e}
		}
	case OpDeposit:
		res.Entries, res.Err = r.svc.Transaction.Apply(ledger.NewDeposit(step.Account, amount))
	case OpWithdraw:
		res.Entries, res.Err = r.svc.Transaction.Apply(ledger.NewWithdraw(step.Account, amount))
	case OpSend:
		res.Entries, res.Err = r.svc.Transaction.Apply(ledger.NewSend(step.From, step.To, amount))
	default:
		res.Err = fmt.Errorf("unknown op %q", step.Op)
	}

	// an implicitly opened account leads with its open entry
	for _, e := range res.Entries {
		if e.Kind != ledger.EntryOpen || step.Op == OpOpen {
			res.Balance = e.Balance
			break
		}
	}
	return res
}

func parseStepAmount(step Step) (int64, error) {
	if step.Op == OpOpen && strings.TrimSpace(step.Amount) == "" {
		return 0, nil
	}
	return money.Parse(step.Amount)
}

func check(step Step, res StepResult) string {
	want := step.Expect
	if want == "" {
		want = CodeOK
	}
	if res.Outcome != want {
		return fmt.Sprintf("expected %s, got %s", want, res.Outcome)
	}

	if step.ExpectBalance != "" && res.Err == nil {
		wantBalance, err := money.Parse(step.ExpectBalance)
		if err != nil {
			return fmt.Sprintf("bad expect_balance: %v", err)
		}
		if res.Balance != wantBalance {
			return fmt.Sprintf("expected balance %s, got %s", money.Format(wantBalance), money.Format(res.Balance))
		}
	}
	return ""
}
