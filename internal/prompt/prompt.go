package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user for the value of a named parameter.
type Prompter interface {
	Input(ctx context.Context, name string) (string, error)
}

type surveyPrompter struct{}

// NewSurvey returns a Prompter reading answers from the terminal.
func NewSurvey() Prompter {
	return &surveyPrompter{}
}

func (p *surveyPrompter) Input(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Value for %s:", name),
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Ask prompts for each name in order and returns the answers.
func Ask(ctx context.Context, p Prompter, names []string) (map[string]string, error) {
	answers := make(map[string]string, len(names))
	for _, name := range names {
		value, err := p.Input(ctx, name)
		if err != nil {
			return nil, err
		}
		answers[name] = value
	}
	return answers, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
