package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git/gittest"
)

func TestWorkflowCommands(t *testing.T) {
	tests := []struct {
		name     string
		fake     *gittest.Fake
		args     []string
		commands []string
	}{
		{
			name:     "commit",
			fake:     origin("main"),
			args:     []string{"commit", "feat: add sync", "--", "--no-verify"},
			commands: []string{"add --all", "commit -m feat: add sync --no-verify"},
		},
		{
			name:     "commit-push passes extras to push",
			fake:     origin("main"),
			args:     []string{"cp", "fix: typo", "origin", "dev", "--", "--tags"},
			commands: []string{"add --all", "commit -m fix: typo", "push origin dev --tags"},
		},
		{
			name:     "push with detection",
			fake:     origin("main"),
			args:     []string{"push"},
			commands: []string{"push origin main"},
		},
		{
			name:     "push-force",
			fake:     origin("main"),
			args:     []string{"pf", "--yes"},
			commands: []string{"push --force origin main"},
		},
		{
			name:     "pull",
			fake:     origin("main"),
			args:     []string{"pull", "upstream"},
			commands: []string{"pull upstream main"},
		},
		{
			name:     "pull-rebase",
			fake:     origin("main"),
			args:     []string{"pr"},
			commands: []string{"pull --rebase origin main"},
		},
		{
			name:     "rebase",
			fake:     origin("feature"),
			args:     []string{"rebase", "main", "--", "--autostash"},
			commands: []string{"rebase main --autostash"},
		},
		{
			name:     "merge",
			fake:     origin("main"),
			args:     []string{"merge", "feature", "--no-ff"},
			commands: []string{"merge --no-ff feature"},
		},
		{
			name:     "merge-to",
			fake:     origin("feature"),
			args:     []string{"merge-to", "main"},
			commands: []string{"checkout main", "merge feature"},
		},
		{
			name:     "amend",
			fake:     origin("main"),
			args:     []string{"amend"},
			commands: []string{"add --all", "commit --amend --no-edit"},
		},
		{
			name:     "reword",
			fake:     origin("main"),
			args:     []string{"reword", "docs: clarify"},
			commands: []string{"commit --amend -m docs: clarify"},
		},
		{
			name:     "undo",
			fake:     origin("main"),
			args:     []string{"undo", "2"},
			commands: []string{"reset --soft HEAD~2"},
		},
		{
			name:     "reset-hard",
			fake:     origin("main"),
			args:     []string{"reset-hard", "origin/main"},
			commands: []string{"reset --hard origin/main"},
		},
		{
			name:     "stash",
			fake:     origin("main").Dirty(),
			args:     []string{"stash", "-m", "wip"},
			commands: []string{"stash push --include-untracked -m wip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.fake)

			_, err := h.run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.commands, h.fake.Commands())
		})
	}
}

func TestMergeNoFFDefault(t *testing.T) {
	t.Run("config enables no-ff", func(t *testing.T) {
		h := newHarness(t, origin("main"))
		h.cfg.Merge.NoFF = true

		_, err := h.run(t, "merge", "feature")
		require.NoError(t, err)
		assert.Equal(t, []string{"merge --no-ff feature"}, h.fake.Commands())
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		h := newHarness(t, origin("main"))
		h.cfg.Merge.NoFF = true

		_, err := h.run(t, "merge", "feature", "--no-ff=false")
		require.NoError(t, err)
		assert.Equal(t, []string{"merge feature"}, h.fake.Commands())
	})
}

func TestWorkflowFailures(t *testing.T) {
	t.Run("merge into the current branch", func(t *testing.T) {
		h := newHarness(t, origin("main"))

		_, err := h.run(t, "merge", "main")
		assert.True(t, gxerrors.IsGxError(err, gxerrors.ErrCodeSameBranch), "got %v", err)
		assert.False(t, h.fake.Called("merge"))
	})

	t.Run("rebase without a branch", func(t *testing.T) {
		h := newHarness(t, origin("main"))

		_, err := h.run(t, "rebase")
		assert.True(t, gxerrors.IsGxError(err, gxerrors.ErrCodeMissingArgument), "got %v", err)
		assert.Empty(t, h.fake.Commands())
	})

	t.Run("invalid message stops commit-push", func(t *testing.T) {
		h := newHarness(t, origin("main"))

		_, err := h.run(t, "cp", "added stuff")
		assert.ErrorIs(t, err, gxerrors.ErrValidation)
		assert.False(t, h.fake.Called("commit"))
		assert.False(t, h.fake.Called("push"))
		assert.Contains(t, h.log.String(), "Commit messages must follow")
	})

	t.Run("ambiguous remote", func(t *testing.T) {
		h := newHarness(t, gittest.New().WithRemotes("origin", "upstream").WithBranch("main"))

		_, err := h.run(t, "pull")
		assert.True(t, gxerrors.IsGxError(err, gxerrors.ErrCodeAmbiguousRemote), "got %v", err)
		assert.Empty(t, h.fake.Commands())
	})

	t.Run("bad undo count", func(t *testing.T) {
		h := newHarness(t, origin("main"))

		_, err := h.run(t, "undo", "many")
		assert.True(t, gxerrors.IsGxError(err, gxerrors.ErrCodeInvalidArgument), "got %v", err)
	})
}

func TestLint(t *testing.T) {
	h := newHarness(t, gittest.New())

	_, err := h.run(t, "lint", "feat(auth): add token refresh")
	require.NoError(t, err)
	assert.Contains(t, h.log.String(), "Commit message is valid")

	_, err = h.run(t, "lint", "added stuff")
	assert.ErrorIs(t, err, gxerrors.ErrValidation)
	assert.Empty(t, h.fake.Calls())
}
