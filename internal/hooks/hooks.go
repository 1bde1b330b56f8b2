// Package hooks installs and runs the gx commit-msg hook.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/fs"
	"github.com/sqve/gx/internal/lint"
	"github.com/sqve/gx/internal/logger"
)

const (
	CommitMsg = "commit-msg"
	marker    = "# installed by gx"
)

var script = []byte("#!/bin/sh\n" + marker + "\nexec gx hook commit-msg \"$1\"\n")

// GitPather resolves paths inside the git directory.
type GitPather interface {
	GitPath(ctx context.Context, name string) (string, error)
}

// Path returns where git looks for the commit-msg hook. It honours
// core.hooksPath and linked worktrees because git resolves it.
func Path(ctx context.Context, repo GitPather) (string, error) {
	dir, err := repo.GitPath(ctx, "hooks")
	if err != nil {
		return "", gxerrors.ErrGit("locate hooks directory", err)
	}
	return filepath.Join(dir, CommitMsg), nil
}

// Install writes the commit-msg hook. An existing hook not written by gx is
// only replaced with force.
func Install(ctx context.Context, repo GitPather, force bool) (string, error) {
	path, err := Path(ctx, repo)
	if err != nil {
		return "", err
	}

	existing, err := os.ReadFile(path) //nolint:gosec // Path is resolved by git
	switch {
	case err == nil && !bytes.Contains(existing, []byte(marker)) && !force:
		return path, gxerrors.NewGxErrorf(gxerrors.ErrCodeInvalidArgument, nil,
			"%s already exists and was not installed by gx; use --force to replace it", path).
			WithContext("path", path)
	case err != nil && !os.IsNotExist(err):
		return path, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := fs.WriteFileAtomic(path, script, fs.FileExec); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Debug("Wrote %s", path)
	return path, nil
}

// Installed reports whether the gx hook is in place.
func Installed(ctx context.Context, repo GitPather) (bool, error) {
	path, err := Path(ctx, repo)
	if err != nil {
		return false, err
	}
	if !fs.FileExists(path) {
		return false, nil
	}
	content, err := os.ReadFile(path) //nolint:gosec // Path is resolved by git
	if err != nil {
		return false, err
	}
	return bytes.Contains(content, []byte(marker)), nil
}

// RunCommitMsg checks the message file git passes to the hook.
func RunCommitMsg(messageFile string) error {
	if messageFile == "" {
		return gxerrors.ErrMissing("message file", "hook commit-msg")
	}
	return lint.CheckFile(messageFile)
}
