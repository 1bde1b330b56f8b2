package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/gx/internal/config"
	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git/gittest"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/prompt"
	"github.com/sqve/gx/internal/testutil"
	testgit "github.com/sqve/gx/internal/testutil/git"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "gx"}
	cmd.PersistentFlags().Bool("plain", false, "")
	cmd.PersistentFlags().Bool("debug", false, "")
	cmd.PersistentFlags().Bool("yes", false, "")
	cmd.SetContext(context.Background())
	return cmd
}

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GX_CONFIG", "")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Cleanup(func() {
		config.Apply(&config.Config{})
		logger.Init(false, false)
	})
}

func TestNewRuntime(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Push.ForceWithLease = true
	fake := gittest.New().WithRemotes("origin").WithBranch("main")

	rt := NewRuntime(cfg, "/repo", fake, prompt.Always{})
	assert.Equal(t, "/repo", rt.Root)
	assert.Same(t, cfg, rt.Config)

	require.NoError(t, rt.Alias.PushForce(context.Background(), nil, nil))
	assert.Equal(t, []string{"push --force-with-lease origin main"}, fake.Commands())
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("uses a real git repository")
	}

	t.Run("outside a repository", func(t *testing.T) {
		isolate(t)
		testutil.Chdir(t, t.TempDir())

		_, err := Load(newCommand(), true)
		assert.True(t, gxerrors.IsGxError(err, gxerrors.ErrCodeNotARepository), "got %v", err)

		rt, err := Load(newCommand(), false)
		require.NoError(t, err)
		assert.Empty(t, rt.Root)
		assert.True(t, rt.Config.Confirm)
	})

	t.Run("inside a repository", func(t *testing.T) {
		isolate(t)
		repo := testgit.NewTestRepo(t)
		repo.WriteFile(config.FileName, "[merge]\nno_ff = true\n")
		repo.Git("config", "gx.push.forceWithLease", "true")
		testutil.Chdir(t, filepath.Join(repo.Path))

		cmd := newCommand()
		require.NoError(t, cmd.ParseFlags([]string{"--yes"}))

		rt, err := Load(cmd, true)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(repo.Path)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(rt.Root)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		assert.True(t, rt.Config.Merge.NoFF, "repository file")
		assert.True(t, rt.Config.Push.ForceWithLease, "git config")
		assert.False(t, rt.Config.Confirm, "--yes")
	})
}
