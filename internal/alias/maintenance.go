package alias

import (
	"context"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/workflow"
)

// Cleanup prunes stale remote-tracking branches for every remote and runs
// gc. With untracked it also deletes untracked files after confirmation.
// extra is passed to gc.
func (r *Runner) Cleanup(ctx context.Context, untracked bool, extra []string) error {
	remotes, err := r.git.ListRemotes(ctx)
	if err != nil {
		return gxerrors.ErrGit("list remotes", err)
	}

	if untracked {
		if err := r.confirm.Confirm("cleanup", "Delete all untracked files and directories?"); err != nil {
			return err
		}
	}

	logger.Info("Cleaning up repository")
	var steps []workflow.Step
	for _, remote := range remotes {
		steps = append(steps, workflow.Step{Name: "prune " + remote, Run: func(ctx context.Context) error {
			return r.git.PruneRemote(ctx, remote)
		}})
	}
	steps = append(steps, workflow.Step{Name: "gc", Run: func(ctx context.Context) error {
		return r.git.GC(ctx, extra...)
	}})
	steps = append(steps, workflow.When(untracked, workflow.Step{Name: "clean untracked", Run: func(ctx context.Context) error {
		return r.git.CleanUntracked(ctx)
	}})...)

	if err := workflow.Run(ctx, "cleanup", steps...); err != nil {
		return err
	}
	return done("Repository cleaned up")
}

// Stash stashes tracked and untracked changes.
func (r *Runner) Stash(ctx context.Context, message string, extra []string) error {
	dirty, err := r.git.IsDirty(ctx)
	if err != nil {
		return gxerrors.ErrGit("read status", err)
	}
	if !dirty {
		logger.Info("Nothing to stash")
		return nil
	}

	logger.Info("Stashing changes")
	err = workflow.Run(ctx, "stash", workflow.Step{Name: "stash", Run: func(ctx context.Context) error {
		return r.git.StashPush(ctx, message, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Changes stashed")
}

// Unstash pops the latest stash entry.
func (r *Runner) Unstash(ctx context.Context, extra []string) error {
	count, err := r.git.StashCount(ctx)
	if err != nil {
		return gxerrors.ErrGit("list stashes", err)
	}
	if count == 0 {
		logger.Warning("No stash entries to restore")
		return nil
	}

	logger.Info("Restoring latest stash")
	err = workflow.Run(ctx, "unstash", workflow.Step{Name: "stash pop", Run: func(ctx context.Context) error {
		return r.git.StashPop(ctx, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Stash restored")
}
