package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed builtin.yaml
var builtinScenario []byte

type Op string

const (
	OpOpen     Op = "open"
	OpDeposit  Op = "deposit"
	OpWithdraw Op = "withdraw"
	OpSend     Op = "send"
	OpBalance  Op = "balance"
)

// Scenario is a scripted sequence of ledger operations.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Op      Op     `yaml:"op"`
	Account string `yaml:"account"`
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Amount  string `yaml:"amount"`

	// Expect is the outcome code the step must produce; empty means "ok".
	Expect        string `yaml:"expect"`
	ExpectBalance string `yaml:"expect_balance"`
}

func Builtin() (*Scenario, error) {
	return Parse(builtinScenario)
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every step is well formed. Amount syntax is left to
// the runner so that malformed amounts surface as invalid_amount outcomes.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}

	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpOpen, OpDeposit, OpWithdraw, OpBalance:
		if s.Account == "" {
			return fmt.Errorf("%s requires account", s.Op)
		}
	case OpSend:
		if s.From == "" || s.To == "" {
			return fmt.Errorf("send requires from and to")
		}
	case "":
		return fmt.Errorf("op is required")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}

	if s.Op != OpOpen && s.Op != OpBalance && s.Amount == "" {
		return fmt.Errorf("%s requires amount", s.Op)
	}
	if s.ExpectBalance != "" && s.Op != OpBalance {
		return fmt.Errorf("expect_balance is only valid on balance steps")
	}
	if s.Expect != "" && !isKnownCode(s.Expect) {
		return fmt.Errorf("unknown expect %q", s.Expect)
	}
	return nil
}

func (s Step) String() string {
	switch s.Op {
	case OpSend:
		return fmt.Sprintf("send %s from %s to %s", s.Amount, s.From, s.To)
	case OpBalance:
		return fmt.Sprintf("balance of %s", s.Account)
	case OpOpen:
		if s.Amount == "" {
			return fmt.Sprintf("open %s", s.Account)
		}
		return fmt.Sprintf("open %s with %s", s.Account, s.Amount)
	default:
		return fmt.Sprintf("%s %s for %s", s.Op, s.Amount, s.Account)
	}
}
