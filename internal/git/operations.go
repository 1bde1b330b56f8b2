package git

import "context"

// The helpers below build the argument lists of the state-changing commands
// the workflows run. extra is appended verbatim.

func (c *Client) AddAll(ctx context.Context) error {
	return c.Exec(ctx, "add", "--all")
}

func (c *Client) Commit(ctx context.Context, message string, extra ...string) error {
	return c.Exec(ctx, concat([]string{"commit", "-m", message}, extra)...)
}

// CommitAmend rewrites HEAD. An empty message keeps the existing one.
func (c *Client) CommitAmend(ctx context.Context, message string, extra ...string) error {
	args := []string{"commit", "--amend"}
	if message == "" {
		args = append(args, "--no-edit")
	} else {
		args = append(args, "-m", message)
	}
	return c.Exec(ctx, concat(args, extra)...)
}

func (c *Client) CommitFixup(ctx context.Context, commit string) error {
	return c.Exec(ctx, "commit", "--fixup", commit)
}

func (c *Client) Push(ctx context.Context, remote, branch string, flags []string, extra ...string) error {
	args := append([]string{"push"}, flags...)
	return c.Exec(ctx, concat(append(args, remote, branch), extra)...)
}

func (c *Client) Pull(ctx context.Context, remote, branch string, flags []string, extra ...string) error {
	args := append([]string{"pull"}, flags...)
	return c.Exec(ctx, concat(append(args, remote, branch), extra)...)
}

// Fetch runs quietly; callers show their own progress.
func (c *Client) Fetch(ctx context.Context, remote string) error {
	_, err := c.Run(ctx, "fetch", "--quiet", remote)
	return err
}

func (c *Client) Checkout(ctx context.Context, branch string) error {
	return c.Exec(ctx, "checkout", branch)
}

func (c *Client) Reset(ctx context.Context, mode, ref string, extra ...string) error {
	return c.Exec(ctx, concat([]string{"reset", mode, ref}, extra)...)
}

func (c *Client) Merge(ctx context.Context, branch string, noFF bool, extra ...string) error {
	args := []string{"merge"}
	if noFF {
		args = append(args, "--no-ff")
	}
	return c.Exec(ctx, concat(append(args, branch), extra)...)
}

func (c *Client) Rebase(ctx context.Context, upstream string, extra ...string) error {
	return c.Exec(ctx, concat([]string{"rebase", upstream}, extra)...)
}

// RebaseAutosquash folds fixup commits onto base without opening an editor.
// An empty base rebases from the root commit.
func (c *Client) RebaseAutosquash(ctx context.Context, base string, extra ...string) error {
	args := []string{"-c", "sequence.editor=:", "rebase", "-i", "--autosquash"}
	if base == "" {
		args = append(args, "--root")
	} else {
		args = append(args, base)
	}
	return c.Exec(ctx, concat(args, extra)...)
}

// StashPush stashes tracked and untracked changes.
func (c *Client) StashPush(ctx context.Context, message string, extra ...string) error {
	args := []string{"stash", "push", "--include-untracked"}
	if message != "" {
		args = append(args, "-m", message)
	}
	return c.Exec(ctx, concat(args, extra)...)
}

func (c *Client) StashPop(ctx context.Context, extra ...string) error {
	return c.Exec(ctx, concat([]string{"stash", "pop"}, extra)...)
}

func (c *Client) PruneRemote(ctx context.Context, remote string) error {
	return c.Exec(ctx, "remote", "prune", remote)
}

func (c *Client) GC(ctx context.Context, extra ...string) error {
	return c.Exec(ctx, concat([]string{"gc", "--prune=now", "--quiet"}, extra)...)
}

func (c *Client) CleanUntracked(ctx context.Context, extra ...string) error {
	return c.Exec(ctx, concat([]string{"clean", "-fd"}, extra)...)
}

func concat(args, extra []string) []string {
	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args...)
	return append(out, extra...)
}
