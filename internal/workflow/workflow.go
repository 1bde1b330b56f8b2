// Package workflow runs a fixed sequence of steps, stopping at the first
// failure.
package workflow

import (
	"context"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
)

// Step is one unit of a workflow, usually a single git invocation.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Run executes steps in order. The first failing step aborts the rest and
// its error is returned naming operation. Nothing is retried or rolled back.
func Run(ctx context.Context, operation string, steps ...Step) error {
	total := len(steps)
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return gxerrors.WithOperation(err, operation)
		}

		logger.Step(i+1, total, step.Name)
		if err := step.Run(ctx); err != nil {
			logger.Debug("%s stopped at step %d/%d (%s)", operation, i+1, total, step.Name)
			return gxerrors.WithOperation(err, operation)
		}
	}
	return nil
}

// Check returns a step that only validates; fn never touches the repository.
func Check(name string, fn func() error) Step {
	return Step{Name: name, Run: func(context.Context) error { return fn() }}
}

// When returns steps if cond holds and nothing otherwise.
func When(cond bool, steps ...Step) []Step {
	if !cond {
		return nil
	}
	return steps
}
