package alias

import (
	"context"
	"fmt"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/resolve"
	"github.com/sqve/gx/internal/workflow"
)

// Push pushes a branch (default: current) to a remote (default: the only
// one).
func (r *Runner) Push(ctx context.Context, args, extra []string) error {
	target, err := r.resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}

	logger.Info("Pushing %s to %s", target.Branch, target.Remote)
	err = workflow.Run(ctx, "push", workflow.Step{Name: "push", Run: func(ctx context.Context) error {
		return r.git.Push(ctx, target.Remote, target.Branch, nil, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Pushed %s to %s", target.Branch, target.Remote)
}

// PushForce overwrites the remote branch after confirmation.
func (r *Runner) PushForce(ctx context.Context, args, extra []string) error {
	target, err := r.resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}

	flag := "--force"
	if r.opts.ForceWithLease {
		flag = "--force-with-lease"
	}

	question := fmt.Sprintf("Force push %s to %s? Remote commits not in your branch will be lost.", target.Branch, target.Remote)
	if err := r.confirm.Confirm("push-force", question); err != nil {
		return err
	}

	logger.Info("Force pushing %s to %s (%s)", target.Branch, target.Remote, flag)
	err = workflow.Run(ctx, "push-force", workflow.Step{Name: "force push", Run: func(ctx context.Context) error {
		return r.git.Push(ctx, target.Remote, target.Branch, []string{flag}, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Force pushed %s to %s", target.Branch, target.Remote)
}

// Pull merges the remote branch into the current one.
func (r *Runner) Pull(ctx context.Context, args, extra []string) error {
	return r.pull(ctx, "pull", nil, args, extra)
}

// PullRebase rebases the current branch onto the remote branch.
func (r *Runner) PullRebase(ctx context.Context, args, extra []string) error {
	return r.pull(ctx, "pull-rebase", []string{"--rebase"}, args, extra)
}

func (r *Runner) pull(ctx context.Context, operation string, flags, args, extra []string) error {
	target, err := r.resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}

	logger.Info("Pulling %s from %s", target.Branch, target.Remote)
	err = workflow.Run(ctx, operation, workflow.Step{Name: "pull", Run: func(ctx context.Context) error {
		return r.git.Pull(ctx, target.Remote, target.Branch, flags, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Pulled %s from %s", target.Branch, target.Remote)
}

// Sync makes the local branch identical to its remote counterpart: fetch,
// check out, hard reset and prune. Uncommitted work is stashed first and
// restored afterwards; if a step fails the stash is kept.
func (r *Runner) Sync(ctx context.Context, args, extra []string) error {
	target, err := r.resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}
	if err := r.notBusy(ctx, "sync"); err != nil {
		return err
	}

	question := fmt.Sprintf("Reset %s to %s? Local commits not on %s will be lost.", target.Branch, target.Ref(), target.Remote)
	if err := r.confirm.Confirm("sync", question); err != nil {
		return err
	}

	dirty, err := r.git.IsDirty(ctx)
	if err != nil {
		return gxerrors.ErrGit("read status", err)
	}

	logger.Info("Syncing %s with %s", target.Branch, target.Ref())

	// Only pop what this sync pushed: git stash may save nothing even when
	// status reports changes, e.g. for modified submodule content.
	var stashed bool
	var steps []workflow.Step
	steps = append(steps, workflow.When(dirty, workflow.Step{Name: "stash changes", Run: func(ctx context.Context) error {
		var err error
		stashed, err = r.stash(ctx, "gx sync")
		return err
	}})...)
	steps = append(steps,
		workflow.Step{Name: "fetch", Run: func(ctx context.Context) error { return r.fetch(ctx, target) }},
		workflow.Step{Name: "checkout", Run: func(ctx context.Context) error {
			return r.git.Checkout(ctx, target.Branch)
		}},
		workflow.Step{Name: "reset", Run: func(ctx context.Context) error {
			return r.git.Reset(ctx, "--hard", target.Ref(), extra...)
		}},
		workflow.Step{Name: "prune", Run: func(ctx context.Context) error {
			return r.git.PruneRemote(ctx, target.Remote)
		}},
	)
	steps = append(steps, workflow.When(dirty, workflow.Step{Name: "restore changes", Run: func(ctx context.Context) error {
		if !stashed {
			logger.Debug("Nothing was stashed, skipping stash pop")
			return nil
		}
		return r.git.StashPop(ctx)
	}})...)

	if err := workflow.Run(ctx, "sync", steps...); err != nil {
		if stashed {
			logger.Warning("Your uncommitted changes may still be stashed; restore them with 'gx unstash'")
		}
		return err
	}
	return done("Synced %s with %s", target.Branch, target.Ref())
}

// RebaseRemote fetches and rebases the current branch onto the remote
// branch.
func (r *Runner) RebaseRemote(ctx context.Context, args, extra []string) error {
	target, err := r.resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}
	if err := r.notBusy(ctx, "rebase-remote"); err != nil {
		return err
	}

	logger.Info("Rebasing onto %s", target.Ref())
	err = workflow.Run(ctx, "rebase-remote",
		workflow.Step{Name: "fetch", Run: func(ctx context.Context) error { return r.fetch(ctx, target) }},
		workflow.Step{Name: "rebase", Run: func(ctx context.Context) error {
			return r.git.Rebase(ctx, target.Ref(), extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Rebased onto %s", target.Ref())
}

// stash pushes a stash entry and reports whether one was created.
func (r *Runner) stash(ctx context.Context, message string) (bool, error) {
	before, err := r.git.StashCount(ctx)
	if err != nil {
		return false, err
	}
	if err := r.git.StashPush(ctx, message); err != nil {
		return false, err
	}
	after, err := r.git.StashCount(ctx)
	if err != nil {
		return false, err
	}
	return after > before, nil
}

func (r *Runner) fetch(ctx context.Context, target resolve.Target) error {
	spinner := logger.StartSpinner(fmt.Sprintf("Fetching %s...", target.Remote))
	defer spinner.Stop()
	return r.git.Fetch(ctx, target.Remote)
}
