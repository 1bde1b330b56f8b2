package alias

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/git/gittest"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/prompt"
	testgit "github.com/sqve/gx/internal/testutil/git"
)

func TestLint(t *testing.T) {
	f := newFixture(t, gittest.New())

	require.NoError(t, f.runner.Lint("feat(auth): add token refresh"))
	assert.ErrorIs(t, f.runner.Lint("added stuff"), gxerrors.ErrValidation)
	assert.Empty(t, f.fake.Calls(), "lint never touches the repository")
}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("stages, lints and commits", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		require.NoError(t, f.runner.Commit(ctx, "feat: add sync", []string{"--no-verify"}))
		assert.Equal(t, []string{"add --all", "commit -m feat: add sync --no-verify"}, f.fake.Commands())
		assert.Contains(t, f.out.String(), "Committed: feat: add sync")
	})

	t.Run("invalid message never commits", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		err := f.runner.Commit(ctx, "added stuff", nil)
		require.ErrorIs(t, err, gxerrors.ErrValidation)
		assert.Contains(t, err.Error(), "commit failed")
		assert.Equal(t, []string{"add --all"}, f.fake.Commands())
		assert.Contains(t, f.out.String(), "Commit messages must follow")
	})

	t.Run("staging failure stops before lint", func(t *testing.T) {
		f := newFixture(t, gittest.New().Fail("add --all", 128, "fatal: index.lock exists"))

		err := f.runner.Commit(ctx, "feat: add sync", nil)
		require.ErrorIs(t, err, gxerrors.ErrGitOperation)
		assert.False(t, f.fake.Called("commit"))
		assert.NotContains(t, f.out.String(), "Commit message is valid")
	})
}

func TestCommitPush(t *testing.T) {
	ctx := context.Background()

	t.Run("commits then pushes with extra args", func(t *testing.T) {
		f := newFixture(t, origin("main"))

		require.NoError(t, f.runner.CommitPush(ctx, "fix: typo", nil, []string{"--tags"}))
		assert.Equal(t, []string{"add --all", "commit -m fix: typo", "push origin main --tags"}, f.fake.Commands())
	})

	t.Run("failed validation never pushes", func(t *testing.T) {
		f := newFixture(t, origin("main"))

		err := f.runner.CommitPush(ctx, "added stuff", nil, nil)
		require.ErrorIs(t, err, gxerrors.ErrValidation)
		assert.False(t, f.fake.Called("commit"))
		assert.False(t, f.fake.Called("push"))
	})

	t.Run("failed commit never pushes", func(t *testing.T) {
		f := newFixture(t, origin("main").Fail("commit -m fix: typo", 1, "nothing to commit"))

		require.Error(t, f.runner.CommitPush(ctx, "fix: typo", nil, nil))
		assert.False(t, f.fake.Called("push"))
	})

	t.Run("explicit remote and branch", func(t *testing.T) {
		f := newFixture(t, gittest.New().WithRemotes("origin", "fork"))

		require.NoError(t, f.runner.CommitPush(ctx, "fix: typo", []string{"fork", "topic"}, nil))
		assert.Contains(t, f.fake.Commands(), "push fork topic")
	})
}

func TestAmend(t *testing.T) {
	f := newFixture(t, gittest.New())

	require.NoError(t, f.runner.Amend(context.Background(), []string{"--reset-author"}))
	assert.Equal(t, []string{"add --all", "commit --amend --no-edit --reset-author"}, f.fake.Commands())
}

func TestReword(t *testing.T) {
	ctx := context.Background()

	t.Run("valid message", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		require.NoError(t, f.runner.Reword(ctx, "docs: clarify sync", nil))
		assert.Equal(t, []string{"commit --amend -m docs: clarify sync"}, f.fake.Commands())
	})

	t.Run("invalid message", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		assert.ErrorIs(t, f.runner.Reword(ctx, "oops", nil), gxerrors.ErrValidation)
		assert.Empty(t, f.fake.Commands())
	})
}

func TestFixup(t *testing.T) {
	ctx := context.Background()

	t.Run("missing commit", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		assert.ErrorIs(t, f.runner.Fixup(ctx, "", nil), gxerrors.ErrMissingArgument)
		assert.Empty(t, f.fake.Calls())
	})

	t.Run("unknown commit", func(t *testing.T) {
		f := newFixture(t, gittest.New().Fail("rev-parse --verify --quiet nope^{commit}", 1, ""))

		err := f.runner.Fixup(ctx, "nope", nil)
		require.ErrorIs(t, err, gxerrors.ErrInvalidArgument)
		assert.Empty(t, f.fake.Commands())
	})

	t.Run("folds changes into commit", func(t *testing.T) {
		f := newFixture(t, resolves(gittest.New(), "abc123", "abc123f00d"))

		require.NoError(t, f.runner.Fixup(ctx, "abc123", []string{"--no-verify"}))
		assert.Equal(t, []string{
			"add --all",
			"commit --fixup abc123f00d",
			"-c sequence.editor=: rebase -i --autosquash abc123f00d~1 --no-verify",
		}, f.fake.Commands())
	})

	t.Run("relative ref is pinned before committing", func(t *testing.T) {
		f := newFixture(t, resolves(gittest.New(), "HEAD", "c0ffee"))

		require.NoError(t, f.runner.Fixup(ctx, "HEAD", nil))
		assert.Equal(t, []string{
			"add --all",
			"commit --fixup c0ffee",
			"-c sequence.editor=: rebase -i --autosquash c0ffee~1",
		}, f.fake.Commands())
	})

	t.Run("root commit rebases from root", func(t *testing.T) {
		fake := resolves(gittest.New(), "abc123", "abc123f00d").
			Fail("rev-parse --verify --quiet abc123f00d~1^{commit}", 1, "")
		f := newFixture(t, fake)

		require.NoError(t, f.runner.Fixup(ctx, "abc123", nil))
		assert.Contains(t, f.fake.Commands(), "-c sequence.editor=: rebase -i --autosquash --root")
	})

	t.Run("fixup commit failure skips rebase", func(t *testing.T) {
		f := newFixture(t, resolves(gittest.New(), "abc123", "abc123").Fail("commit --fixup abc123", 1, "nothing added to commit"))

		err := f.runner.Fixup(ctx, "abc123", nil)
		require.ErrorIs(t, err, gxerrors.ErrGitOperation)
		assert.False(t, f.fake.Called("-c"))
	})
}

// resolves scripts ref resolving to sha.
func resolves(fake *gittest.Fake, ref, sha string) *gittest.Fake {
	return fake.On("rev-parse --verify --quiet "+ref+"^{commit}", sha)
}

func TestFixupRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("uses a real git repository")
	}
	ctx := context.Background()

	setup := func(t *testing.T) (*testgit.TestRepo, *Runner) {
		t.Helper()
		repo := testgit.NewTestRepo(t)
		repo.WriteFile("b.txt", "b")
		repo.Commit("feat: b")
		repo.WriteFile("c.txt", "c")
		repo.Commit("feat: c")

		restore := logger.SetOutput(io.Discard)
		t.Cleanup(restore)
		return repo, New(git.NewClient(git.NewLiveGitCommander(repo.Path, 0)), prompt.Always{}, Options{})
	}

	t.Run("HEAD", func(t *testing.T) {
		repo, runner := setup(t)
		repo.WriteFile("c.txt", "c2")

		require.NoError(t, runner.Fixup(ctx, "HEAD", nil))
		assert.Equal(t, "feat: c\nfeat: b\nchore: initial commit", repo.Git("log", "--format=%s"))
		assert.Equal(t, "c.txt", repo.Git("show", "--name-only", "--format=", "HEAD"))
		assert.Equal(t, "c2", repo.Git("show", "HEAD:c.txt"))
	})

	t.Run("HEAD~1", func(t *testing.T) {
		repo, runner := setup(t)
		repo.WriteFile("b.txt", "b2")

		require.NoError(t, runner.Fixup(ctx, "HEAD~1", nil))
		assert.Equal(t, "feat: c\nfeat: b\nchore: initial commit", repo.Git("log", "--format=%s"))
		assert.Equal(t, "b2", repo.Git("show", "HEAD~1:b.txt"))
		assert.Empty(t, repo.Git("status", "--porcelain"))
	})
}
