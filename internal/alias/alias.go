// Package alias implements the gx workflows: short, fixed sequences of git
// commands built from the resolver, the linter and workflow steps.
//
// Every workflow takes an extra argument list that is passed verbatim to
// its main git command.
package alias

import (
	"context"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/prompt"
	"github.com/sqve/gx/internal/resolve"
	"github.com/sqve/gx/internal/workflow"
)

// Options are the configurable workflow defaults.
type Options struct {
	// ForceWithLease makes PushForce use --force-with-lease.
	ForceWithLease bool
}

// Runner runs workflows against one repository.
type Runner struct {
	git      *git.Client
	resolver *resolve.Resolver
	confirm  prompt.Confirmer
	opts     Options
}

func New(client *git.Client, confirm prompt.Confirmer, opts Options) *Runner {
	if confirm == nil {
		confirm = prompt.Always{}
	}
	return &Runner{
		git:      client,
		resolver: resolve.New(client),
		confirm:  confirm,
		opts:     opts,
	}
}

func (r *Runner) stage() workflow.Step {
	return workflow.Step{Name: "stage changes", Run: r.git.AddAll}
}

// notBusy fails when a merge, rebase, cherry-pick or revert is waiting for
// the user, so operation does not pile onto it.
func (r *Runner) notBusy(ctx context.Context, operation string) error {
	ongoing, err := r.git.OngoingOperation(ctx)
	if err != nil {
		return gxerrors.ErrGit("inspect repository state", err)
	}
	if ongoing != "" {
		return gxerrors.ErrOperationInProgress(operation, ongoing)
	}
	return nil
}

// currentBranch is the checked-out branch, with a detached HEAD reported as
// DETACHED_HEAD.
func (r *Runner) currentBranch(ctx context.Context) (string, error) {
	branch, err := r.git.CurrentBranch(ctx)
	if err != nil {
		if gxerrors.Is(err, git.ErrDetachedHead) {
			return "", gxerrors.ErrHeadDetached()
		}
		return "", gxerrors.ErrGit("read current branch", err)
	}
	return branch, nil
}

func done(format string, args ...any) error {
	logger.Success(format, args...)
	return nil
}
