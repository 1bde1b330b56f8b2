// Package resolve turns optional remote and branch arguments into a concrete
// push/pull target.
package resolve

import (
	"context"
	"errors"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/logger"
)

// Target is the remote and branch a workflow operates on.
type Target struct {
	Remote string
	Branch string
}

// Ref returns the remote-tracking ref, e.g. "origin/main".
func (t Target) Ref() string {
	return t.Remote + "/" + t.Branch
}

func (t Target) String() string {
	return t.Branch + " on " + t.Remote
}

// Inspector is the repository state the resolver queries.
type Inspector interface {
	ListRemotes(ctx context.Context) ([]string, error)
	CurrentBranch(ctx context.Context) (string, error)
}

// Resolver fills in missing target parts from the repository.
type Resolver struct {
	repo Inspector
}

func New(repo Inspector) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve interprets args as [remote [branch]]. Extra arguments are ignored.
// An omitted remote is detected only when exactly one remote is configured;
// an omitted branch defaults to the checked-out branch. Explicit values are
// used as given without checking that they exist.
func (r *Resolver) Resolve(ctx context.Context, args []string) (Target, error) {
	var remote, branch string
	if len(args) > 0 {
		remote = args[0]
	}
	if len(args) > 1 {
		branch = args[1]
	}

	remote, err := r.Remote(ctx, remote)
	if err != nil {
		return Target{}, err
	}

	branch, err = r.Branch(ctx, branch)
	if err != nil {
		return Target{}, err
	}

	return Target{Remote: remote, Branch: branch}, nil
}

// Remote returns remote if set, otherwise the single configured remote.
func (r *Resolver) Remote(ctx context.Context, remote string) (string, error) {
	if remote != "" {
		logger.Info("Using remote: %s", remote)
		return remote, nil
	}

	remotes, err := r.repo.ListRemotes(ctx)
	if err != nil {
		return "", gxerrors.ErrGit("list remotes", err)
	}

	switch len(remotes) {
	case 0:
		return "", gxerrors.ErrRemoteMissing()
	case 1:
		logger.Info("Detected remote: %s", remotes[0])
		return remotes[0], nil
	default:
		return "", gxerrors.ErrRemoteAmbiguous(remotes)
	}
}

// Branch returns branch if set, otherwise the checked-out branch.
func (r *Resolver) Branch(ctx context.Context, branch string) (string, error) {
	if branch != "" {
		logger.Info("Using branch: %s", branch)
		return branch, nil
	}

	current, err := r.repo.CurrentBranch(ctx)
	if err != nil {
		if errors.Is(err, git.ErrDetachedHead) {
			return "", gxerrors.ErrHeadDetached()
		}
		return "", gxerrors.ErrGit("read current branch", err)
	}

	logger.Info("Detected branch: %s", current)
	return current, nil
}
