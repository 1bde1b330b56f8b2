package git

import (
	"context"
	"strings"
)

// ListBranches returns local branches followed by remote-tracking branches
// with their remote prefix stripped. Duplicates and symbolic HEAD refs are
// dropped.
func (c *Client) ListBranches(ctx context.Context) ([]string, error) {
	out, err := c.cmd.Run(ctx, "for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var branches []string
	for _, ref := range lines(out) {
		name, ok := branchFromRef(ref)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		branches = append(branches, name)
	}

	return branches, nil
}

// branchFromRef maps refs/heads/<b> and refs/remotes/<remote>/<b> to <b>.
func branchFromRef(ref string) (string, bool) {
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		return name, name != ""
	}

	rest, ok := strings.CutPrefix(ref, "refs/remotes/")
	if !ok {
		return "", false
	}
	_, name, ok := strings.Cut(rest, "/")
	if !ok || name == "" || name == "HEAD" {
		return "", false
	}
	return name, true
}
