package git

import (
	"context"
	"errors"
	"strings"
)

// ErrDetachedHead is returned by CurrentBranch when HEAD names no branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// Client exposes the git queries and state-changing commands the workflows
// are built from. Every call goes through the Commander.
type Client struct {
	cmd Commander
}

// NewClient returns a client running git through cmd.
func NewClient(cmd Commander) *Client {
	return &Client{cmd: cmd}
}

// Run executes a query and returns its output.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	return c.cmd.Run(ctx, args...)
}

// Exec executes a state-changing command with its output streamed.
func (c *Client) Exec(ctx context.Context, args ...string) error {
	return c.cmd.Stream(ctx, args...)
}

// ListRemotes returns the configured remote names in git's order.
func (c *Client) ListRemotes(ctx context.Context) ([]string, error) {
	out, err := c.cmd.Run(ctx, "remote")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// CurrentBranch returns the checked-out branch name, or ErrDetachedHead.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.cmd.Run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		// symbolic-ref --quiet exits 1 without output when HEAD is detached.
		if ExitCode(err) == 1 {
			return "", ErrDetachedHead
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsDirty reports whether the working tree has staged, unstaged or untracked
// changes.
func (c *Client) IsDirty(ctx context.Context) (bool, error) {
	out, err := c.cmd.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitExists reports whether ref resolves to a commit.
func (c *Client) CommitExists(ctx context.Context, ref string) (bool, error) {
	_, err := c.cmd.Run(ctx, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		if ExitCode(err) == 1 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ResolveCommit returns the full object name of the commit ref points at.
// ok is false when ref names no commit. Resolve relative refs such as
// HEAD~1 before committing, since they move with HEAD.
func (c *Client) ResolveCommit(ctx context.Context, ref string) (sha string, ok bool, err error) {
	out, err := c.cmd.Run(ctx, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		if ExitCode(err) == 1 {
			return "", false, nil
		}
		return "", false, err
	}
	sha = strings.TrimSpace(out)
	return sha, sha != "", nil
}

// GitPath resolves a path inside the git directory, e.g. "hooks".
func (c *Client) GitPath(ctx context.Context, name string) (string, error) {
	out, err := c.cmd.Run(ctx, "rev-parse", "--path-format=absolute", "--git-path", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func lines(out string) []string {
	var result []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
