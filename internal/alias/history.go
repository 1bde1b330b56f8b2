package alias

import (
	"context"
	"fmt"
	"strconv"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/workflow"
)

// Rebase rebases the current branch onto branch.
func (r *Runner) Rebase(ctx context.Context, branch string, extra []string) error {
	if branch == "" {
		return gxerrors.ErrMissing("branch", "rebase")
	}
	if err := r.notBusy(ctx, "rebase"); err != nil {
		return err
	}

	logger.Info("Rebasing onto %s", branch)
	err := workflow.Run(ctx, "rebase", workflow.Step{Name: "rebase", Run: func(ctx context.Context) error {
		return r.git.Rebase(ctx, branch, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Rebased onto %s", branch)
}

// Merge merges branch into the current branch. Merging a branch into itself
// is refused before git runs.
func (r *Runner) Merge(ctx context.Context, branch string, noFF bool, extra []string) error {
	if branch == "" {
		return gxerrors.ErrMissing("branch", "merge")
	}

	current, err := r.currentBranch(ctx)
	if err != nil {
		return err
	}
	if current == branch {
		return gxerrors.ErrMergeSameBranch(branch)
	}
	if err := r.notBusy(ctx, "merge"); err != nil {
		return err
	}

	logger.Info("Merging %s into %s", branch, current)
	err = workflow.Run(ctx, "merge", workflow.Step{Name: "merge", Run: func(ctx context.Context) error {
		return r.git.Merge(ctx, branch, noFF, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Merged %s into %s", branch, current)
}

// MergeTo checks out target and merges the branch that was current into it.
func (r *Runner) MergeTo(ctx context.Context, target string, noFF bool, extra []string) error {
	if target == "" {
		return gxerrors.ErrMissing("target branch", "merge-to")
	}

	source, err := r.currentBranch(ctx)
	if err != nil {
		return err
	}
	if source == target {
		return gxerrors.ErrMergeSameBranch(target)
	}
	if err := r.notBusy(ctx, "merge-to"); err != nil {
		return err
	}

	logger.Info("Merging %s into %s", source, target)
	err = workflow.Run(ctx, "merge-to",
		workflow.Step{Name: "checkout " + target, Run: func(ctx context.Context) error {
			return r.git.Checkout(ctx, target)
		}},
		workflow.Step{Name: "merge", Run: func(ctx context.Context) error {
			return r.git.Merge(ctx, source, noFF, extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Merged %s into %s", source, target)
}

// Undo moves HEAD back count commits keeping their changes staged. An empty
// count means one.
func (r *Runner) Undo(ctx context.Context, count string, extra []string) error {
	n := 1
	if count != "" {
		parsed, err := strconv.Atoi(count)
		if err != nil || parsed < 1 {
			return gxerrors.ErrInvalid("count", count, "must be a positive integer")
		}
		n = parsed
	}

	ref := fmt.Sprintf("HEAD~%d", n)
	logger.Info("Undoing %d commit(s), keeping changes staged", n)
	err := workflow.Run(ctx, "undo", workflow.Step{Name: "soft reset", Run: func(ctx context.Context) error {
		return r.git.Reset(ctx, "--soft", ref, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Reset to %s", ref)
}

// ResetHard discards all uncommitted changes and moves HEAD to ref (default
// HEAD) after confirmation.
func (r *Runner) ResetHard(ctx context.Context, ref string, extra []string) error {
	if ref == "" {
		ref = "HEAD"
	}

	question := fmt.Sprintf("Discard all uncommitted changes and reset to %s?", ref)
	if err := r.confirm.Confirm("reset-hard", question); err != nil {
		return err
	}

	logger.Info("Resetting to %s", ref)
	err := workflow.Run(ctx, "reset-hard", workflow.Step{Name: "hard reset", Run: func(ctx context.Context) error {
		return r.git.Reset(ctx, "--hard", ref, extra...)
	}})
	if err != nil {
		return err
	}
	return done("Reset to %s", ref)
}
