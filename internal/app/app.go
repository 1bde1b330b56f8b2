// Package app builds the per-invocation runtime shared by every command:
// repository discovery, layered configuration, logging and the git client.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/alias"
	"github.com/sqve/gx/internal/config"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/prompt"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "v0.1.0"

// Runtime is what a command runs against.
type Runtime struct {
	Config *config.Config
	// Root is the repository top level, empty outside a repository.
	Root  string
	Git   *git.Client
	Alias *alias.Runner
}

// Loader builds the Runtime for cmd. With needRepo set it fails outside a
// repository. Tests substitute a loader backed by a scripted commander.
type Loader func(cmd *cobra.Command, needRepo bool) (*Runtime, error)

// NewRuntime wires the workflow runner for cfg over commander.
func NewRuntime(cfg *config.Config, root string, commander git.Commander, confirm prompt.Confirmer) *Runtime {
	client := git.NewClient(commander)
	return &Runtime{
		Config: cfg,
		Root:   root,
		Git:    client,
		Alias:  alias.New(client, confirm, alias.Options{ForceWithLease: cfg.Push.ForceWithLease}),
	}
}

// Load is the Loader used by the gx binary.
func Load(cmd *cobra.Command, needRepo bool) (*Runtime, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	// Outside a repository the configuration is still loaded so the error
	// is reported in the configured output mode.
	root, rootErr := git.FindRoot(cwd)

	dir := root
	if dir == "" {
		dir = cwd
	}
	commander := git.NewLiveGitCommander(dir, 0)
	client := git.NewClient(commander)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(config.Sources{
		UserFile: config.UserConfigPath(),
		RepoDir:  root,
		GitConfig: func() (map[string]string, error) {
			return client.ConfigEntries(ctx, config.GitConfigPattern)
		},
		Flags: cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	configureLogging(cfg)
	if rootErr != nil && needRepo {
		return nil, rootErr
	}
	commander.Timeout = cfg.Git.Timeout
	logger.Debug("Repository root: %q, timeout: %s", root, cfg.Git.Timeout)

	return NewRuntime(cfg, root, commander, prompt.New(cfg.Confirm)), nil
}

// configureLogging publishes the output settings before any command output.
func configureLogging(cfg *config.Config) {
	config.Apply(cfg)
	logger.Init(cfg.Plain, cfg.Debug)
}
