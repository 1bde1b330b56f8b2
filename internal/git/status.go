package git

import (
	"context"
	"strings"

	"github.com/sqve/gx/internal/fs"
)

// Markers git leaves in the git directory while a multi-step operation
// waits for the user.
const (
	markerMergeHead      = "MERGE_HEAD"
	markerRebaseMerge    = "rebase-merge"
	markerRebaseApply    = "rebase-apply"
	markerCherryPickHead = "CHERRY_PICK_HEAD"
	markerRevertHead     = "REVERT_HEAD"
)

// OngoingOperation returns the name of any ongoing git operation, or empty string if none.
// Returns: "merging", "rebasing", "cherry-picking", "reverting", or ""
func (c *Client) OngoingOperation(ctx context.Context) (string, error) {
	checks := []struct {
		markers []string
		name    string
	}{
		{[]string{markerMergeHead}, "merging"},
		{[]string{markerRebaseMerge, markerRebaseApply}, "rebasing"},
		{[]string{markerCherryPickHead}, "cherry-picking"},
		{[]string{markerRevertHead}, "reverting"},
	}

	for _, check := range checks {
		for _, marker := range check.markers {
			path, err := c.GitPath(ctx, marker)
			if err != nil {
				return "", err
			}
			if fs.PathExists(path) {
				return check.name, nil
			}
		}
	}

	return "", nil
}

// StashCount returns the number of stash entries.
func (c *Client) StashCount(ctx context.Context) (int, error) {
	out, err := c.cmd.Run(ctx, "stash", "list")
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(out) == "" {
		return 0, nil
	}
	return len(lines(out)), nil
}
