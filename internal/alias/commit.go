package alias

import (
	"context"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/lint"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/workflow"
)

// Lint validates message without touching the repository.
func (r *Runner) Lint(message string) error {
	return lint.Check(message)
}

// Commit stages everything, lints message and commits.
func (r *Runner) Commit(ctx context.Context, message string, extra []string) error {
	logger.Info("Committing all changes")

	err := workflow.Run(ctx, "commit",
		r.stage(),
		workflow.Check("lint message", func() error { return lint.Check(message) }),
		workflow.Step{Name: "commit", Run: func(ctx context.Context) error {
			return r.git.Commit(ctx, message, extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Committed: %s", message)
}

// CommitPush commits and then pushes. The push never runs when the commit
// fails.
func (r *Runner) CommitPush(ctx context.Context, message string, args, extra []string) error {
	if err := r.Commit(ctx, message, nil); err != nil {
		return err
	}
	return r.Push(ctx, args, extra)
}

// Amend folds all changes into HEAD keeping its message.
func (r *Runner) Amend(ctx context.Context, extra []string) error {
	logger.Info("Amending last commit")

	err := workflow.Run(ctx, "amend",
		r.stage(),
		workflow.Step{Name: "amend commit", Run: func(ctx context.Context) error {
			return r.git.CommitAmend(ctx, "", extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Amended last commit")
}

// Reword replaces the message of HEAD after linting it. Staged changes are
// included; unstaged ones are not.
func (r *Runner) Reword(ctx context.Context, message string, extra []string) error {
	logger.Info("Rewording last commit")

	err := workflow.Run(ctx, "reword",
		workflow.Check("lint message", func() error { return lint.Check(message) }),
		workflow.Step{Name: "amend message", Run: func(ctx context.Context) error {
			return r.git.CommitAmend(ctx, message, extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Reworded last commit: %s", message)
}

// Fixup commits all changes as a fixup of commit and autosquashes it in
// without opening an editor.
func (r *Runner) Fixup(ctx context.Context, commit string, extra []string) error {
	if commit == "" {
		return gxerrors.ErrMissing("commit", "fixup")
	}
	if err := r.notBusy(ctx, "fixup"); err != nil {
		return err
	}

	// Pin the target before committing: HEAD-relative refs would otherwise
	// shift onto the fixup commit.
	sha, ok, err := r.git.ResolveCommit(ctx, commit)
	if err != nil {
		return gxerrors.ErrGit("resolve commit", err)
	}
	if !ok {
		return gxerrors.ErrInvalid("commit", commit, "no such commit")
	}

	// A root commit has no parent to rebase onto.
	base := sha + "~1"
	hasParent, err := r.git.CommitExists(ctx, base)
	if err != nil {
		return gxerrors.ErrGit("resolve commit", err)
	}
	if !hasParent {
		base = ""
	}

	logger.Info("Fixing up %s", commit)
	err = workflow.Run(ctx, "fixup",
		r.stage(),
		workflow.Step{Name: "fixup commit", Run: func(ctx context.Context) error {
			return r.git.CommitFixup(ctx, sha)
		}},
		workflow.Step{Name: "autosquash", Run: func(ctx context.Context) error {
			return r.git.RebaseAutosquash(ctx, base, extra...)
		}},
	)
	if err != nil {
		return err
	}
	return done("Folded changes into %s", commit)
}
