package ui

import "github.com/AlecAivazis/survey/v2"

// ShellPromptOptions styles the shell command line with a ">" icon.
func ShellPromptOptions() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = ">"
			icons.Question.Format = "cyan+b"
			icons.Help.Text = "?"
		}),
		survey.WithShowCursor(true),
	}
}
