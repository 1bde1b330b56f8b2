package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	gxerrors "github.com/sqve/gx/internal/errors"
)

// FindRoot returns the top-level directory of the work tree containing dir.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", gxerrors.ErrNotRepo(abs, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no work tree to run workflows in.
		return "", gxerrors.ErrNotRepo(abs, err)
	}

	return worktree.Filesystem.Root(), nil
}
