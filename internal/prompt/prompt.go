// Package prompt asks the operator before destructive workflows.
package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/sqve/gx/internal/config"
	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
)

// Confirmer gates a destructive operation. A nil error means go ahead.
type Confirmer interface {
	Confirm(operation, question string) error
}

// Prompter confirms through an interactive survey prompt.
type Prompter struct {
	enabled     bool
	interactive func() bool
	ask         func(question string) (bool, error)
}

// New returns a Prompter. With enabled false every confirmation passes
// without asking.
func New(enabled bool) *Prompter {
	return &Prompter{
		enabled:     enabled,
		interactive: config.StdinIsTerminal,
		ask:         askSurvey,
	}
}

// Confirm asks question and returns an ABORTED error naming operation unless
// the operator agrees. It does not ask when confirmations are disabled or
// stdin is not a terminal.
func (p *Prompter) Confirm(operation, question string) error {
	if !p.enabled {
		logger.Debug("Confirmation disabled, continuing with %s", operation)
		return nil
	}
	if !p.interactive() {
		logger.Debug("Stdin is not a terminal, continuing with %s", operation)
		return nil
	}

	ok, err := p.ask(question)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return gxerrors.ErrDeclined(operation)
		}
		return err
	}
	if !ok {
		return gxerrors.ErrDeclined(operation)
	}
	return nil
}

func askSurvey(question string) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: question, Default: false}, &answer)
	return answer, err
}

// Always is a Confirmer that never asks.
type Always struct{}

func (Always) Confirm(string, string) error { return nil }
