package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/octopus/internal/ui"
)

var shellCommands = []string{"open", "deposit", "withdraw", "send", "balance", "print", "txlog", "help", "quit"}

// Terminal reads shell input from the user's terminal.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Command() (string, error) {
	var command string

	prompt := &survey.Input{
		Message: "octopus",
		Help:    "open, deposit, withdraw, send, balance, print, txlog, help, quit",
		Suggest: suggestCommand,
	}
	if err := survey.AskOne(prompt, &command, ui.ShellPromptOptions()...); err != nil {
		return "", err
	}

	return strings.TrimSpace(command), nil
}

func (t *Terminal) Account(title string, validate func(string) error) (string, error) {
	name, err := PromptInput(title, "", validate)
	return strings.TrimSpace(name), err
}

func (t *Terminal) Amount(title string, validate func(string) error) (string, error) {
	return PromptAmount(title, "Major units, up to 2 decimals (e.g. 12.50)", validate)
}

func suggestCommand(toComplete string) []string {
	var out []string
	for _, c := range shellCommands {
		if strings.HasPrefix(c, strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}
