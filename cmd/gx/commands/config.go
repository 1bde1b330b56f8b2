package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/config"
	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
)

func NewConfigCmd(load app.Loader) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config [key]",
		Short: "Show the effective configuration",
		Long: `Print the effective configuration after merging defaults, the user config
file, .gx.toml, gx.* git config, GX_* environment variables and flags.

Examples:
  gx config                # All keys
  gx config merge.no_ff    # One key
  gx config --init         # Write .gx.toml with the current values`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return getConfigCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return runConfigInit(cmd, load)
			}
			return runConfigShow(cmd, load, arg(args, 0))
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a commented "+config.FileName+" at the repository root")
	cmd.Flags().BoolP("help", "h", false, "Help for config")

	return cmd
}

func runConfigShow(cmd *cobra.Command, load app.Loader, key string) error {
	rt, err := load(cmd, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if key != "" {
		if !isValidConfigKey(key) {
			return gxerrors.ErrInvalid("config key", key, "expected one of "+strings.Join(config.Keys(), ", "))
		}
		value, _ := rt.Config.Get(key)
		_, err := fmt.Fprintln(out, value)
		return err
	}

	for _, s := range rt.Config.Settings() {
		if _, err := fmt.Fprintf(out, "%s = %s\n", s.Key, s.Value); err != nil {
			return err
		}
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, load app.Loader) error {
	rt, err := load(cmd, true)
	if err != nil {
		return err
	}

	if config.FileConfigExists(rt.Root) {
		return gxerrors.ErrInvalid("config file", filepath.Join(rt.Root, config.FileName), "already exists")
	}

	path, err := config.WriteTemplateToFile(rt.Root, rt.Config)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Success("Wrote %s", path)
	return nil
}

// isValidConfigKey validates that key names a gx setting
func isValidConfigKey(key string) bool {
	if key == "" {
		return false
	}
	return config.IsValidKey(key)
}

// getConfigCompletions returns completion suggestions for config keys
func getConfigCompletions(toComplete string) []string {
	var completions []string
	for _, key := range config.Keys() {
		if strings.HasPrefix(key, toComplete) {
			completions = append(completions, key)
		}
	}
	return completions
}
