package resolve

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/git/gittest"
	"github.com/sqve/gx/internal/logger"
)

func newResolver(t *testing.T, fake *gittest.Fake) (*Resolver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	restore := logger.SetOutput(&buf)
	logger.Init(true, false)
	t.Cleanup(func() {
		restore()
		logger.Init(false, false)
	})
	return New(git.NewClient(fake)), &buf
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("single remote and current branch are detected", func(t *testing.T) {
		r, out := newResolver(t, gittest.New().WithRemotes("origin").WithBranch("feat/login"))

		target, err := r.Resolve(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, Target{Remote: "origin", Branch: "feat/login"}, target)
		assert.Contains(t, out.String(), "Detected remote: origin")
		assert.Contains(t, out.String(), "Detected branch: feat/login")
	})

	t.Run("explicit remote is not validated", func(t *testing.T) {
		fake := gittest.New().WithRemotes("origin", "upstream").WithBranch("main")
		r, out := newResolver(t, fake)

		target, err := r.Resolve(ctx, []string{"nowhere"})
		require.NoError(t, err)
		assert.Equal(t, Target{Remote: "nowhere", Branch: "main"}, target)
		assert.Contains(t, out.String(), "Using remote: nowhere")
		assert.False(t, fake.Called("remote"), "remotes must not be listed for an explicit remote")
	})

	t.Run("explicit remote and branch skip every query", func(t *testing.T) {
		fake := gittest.New().Detached()
		r, out := newResolver(t, fake)

		target, err := r.Resolve(ctx, []string{"upstream", "release"})
		require.NoError(t, err)
		assert.Equal(t, Target{Remote: "upstream", Branch: "release"}, target)
		assert.Contains(t, out.String(), "Using branch: release")
		assert.Empty(t, fake.Calls())
	})

	t.Run("no remotes", func(t *testing.T) {
		fake := gittest.New().WithRemotes().WithBranch("main")
		r, _ := newResolver(t, fake)

		_, err := r.Resolve(ctx, nil)
		assert.ErrorIs(t, err, gxerrors.ErrNoRemote)
		assert.False(t, fake.Called("symbolic-ref"), "branch lookup runs after remote resolution")
	})

	t.Run("multiple remotes", func(t *testing.T) {
		r, _ := newResolver(t, gittest.New().WithRemotes("origin", "upstream").WithBranch("main"))

		_, err := r.Resolve(ctx, nil)
		require.ErrorIs(t, err, gxerrors.ErrAmbiguousRemote)
		assert.Contains(t, err.Error(), "origin, upstream")
	})

	t.Run("detached head", func(t *testing.T) {
		r, _ := newResolver(t, gittest.New().WithRemotes("origin").Detached())

		_, err := r.Resolve(ctx, nil)
		assert.ErrorIs(t, err, gxerrors.ErrDetachedHead)
	})

	t.Run("git failure while listing remotes", func(t *testing.T) {
		r, _ := newResolver(t, gittest.New().Fail("remote", 128, "fatal: not a git repository"))

		_, err := r.Resolve(ctx, nil)
		require.ErrorIs(t, err, gxerrors.ErrGitOperation)
		assert.Contains(t, err.Error(), "list remotes failed")
	})

	t.Run("git failure while reading branch", func(t *testing.T) {
		fake := gittest.New().WithRemotes("origin").Fail("symbolic-ref --quiet --short HEAD", 128, "fatal")
		r, _ := newResolver(t, fake)

		_, err := r.Resolve(ctx, nil)
		assert.ErrorIs(t, err, gxerrors.ErrGitOperation)
	})
}

func TestTarget(t *testing.T) {
	target := Target{Remote: "origin", Branch: "main"}
	assert.Equal(t, "origin/main", target.Ref())
	assert.Equal(t, "main on origin", target.String())
}
