package alias

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git/gittest"
)

func TestCleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("prunes every remote and collects garbage", func(t *testing.T) {
		f := newFixture(t, gittest.New().WithRemotes("origin", "upstream"))

		require.NoError(t, f.runner.Cleanup(ctx, false, []string{"--aggressive"}))
		assert.Equal(t, []string{
			"remote prune origin",
			"remote prune upstream",
			"gc --prune=now --quiet --aggressive",
		}, f.fake.Commands())
		assert.Empty(t, f.confirm.asked)
	})

	t.Run("untracked files after confirmation", func(t *testing.T) {
		f := newFixture(t, gittest.New().WithRemotes())

		require.NoError(t, f.runner.Cleanup(ctx, true, nil))
		assert.Equal(t, []string{"gc --prune=now --quiet", "clean -fd"}, f.fake.Commands())
		assert.Equal(t, []string{"cleanup"}, f.confirm.asked)
	})

	t.Run("declined untracked cleanup does nothing", func(t *testing.T) {
		f := newFixture(t, gittest.New().WithRemotes("origin"), withConfirm(declined()))

		assert.ErrorIs(t, f.runner.Cleanup(ctx, true, nil), gxerrors.ErrAborted)
		assert.Empty(t, f.fake.Commands())
	})

	t.Run("prune failure stops", func(t *testing.T) {
		f := newFixture(t, gittest.New().WithRemotes("origin", "upstream").Fail("remote prune origin", 128, ""))

		require.Error(t, f.runner.Cleanup(ctx, false, nil))
		assert.Equal(t, []string{"remote prune origin"}, f.fake.Commands())
	})
}

func TestStash(t *testing.T) {
	ctx := context.Background()

	t.Run("clean tree", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		require.NoError(t, f.runner.Stash(ctx, "", nil))
		assert.Empty(t, f.fake.Commands())
		assert.Contains(t, f.out.String(), "Nothing to stash")
	})

	t.Run("dirty tree", func(t *testing.T) {
		f := newFixture(t, gittest.New().Dirty())

		require.NoError(t, f.runner.Stash(ctx, "wip", nil))
		assert.Equal(t, []string{"stash push --include-untracked -m wip"}, f.fake.Commands())
	})
}

func TestUnstash(t *testing.T) {
	ctx := context.Background()

	t.Run("no entries", func(t *testing.T) {
		f := newFixture(t, gittest.New())

		require.NoError(t, f.runner.Unstash(ctx, nil))
		assert.Empty(t, f.fake.Commands())
		assert.Contains(t, f.out.String(), "No stash entries")
	})

	t.Run("pops latest", func(t *testing.T) {
		f := newFixture(t, gittest.New().On("stash list", "stash@{0}: On main: wip"))

		require.NoError(t, f.runner.Unstash(ctx, []string{"--index"}))
		assert.Equal(t, []string{"stash pop --index"}, f.fake.Commands())
	})
}
