package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/hooks"
	"github.com/sqve/gx/internal/logger"
)

func NewHookCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the commit-msg hook",
		Long: `Install and run the commit-msg hook that lints every commit message,
including those written by plain git commit.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().BoolP("help", "h", false, "Help for hook")

	cmd.AddCommand(newHookInstallCmd(load))
	cmd.AddCommand(newHookCommitMsgCmd(load))
	cmd.AddCommand(newHookStatusCmd(load))

	return cmd
}

func newHookInstallCmd(load app.Loader) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "install",
		Short:             "Install the commit-msg hook",
		Long:              `Write the commit-msg hook into the repository's hooks directory. A hook not written by gx is only replaced with --force.`,
		Args:              cobra.NoArgs,
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			path, err := hooks.Install(cmd.Context(), rt.Git, force)
			if err != nil {
				return err
			}
			logger.Success("Installed %s hook at %s", hooks.CommitMsg, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing hook")
	cmd.Flags().BoolP("help", "h", false, "Help for install")

	return cmd
}

func newHookCommitMsgCmd(load app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:    "commit-msg <message-file>",
		Short:  "Check a commit message file (run by git)",
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := load(cmd, false); err != nil {
				return err
			}
			return hooks.RunCommitMsg(arg(args, 0))
		},
	}
}

func newHookStatusCmd(load app.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the commit-msg hook is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			installed, err := hooks.Installed(cmd.Context(), rt.Git)
			if err != nil {
				return err
			}
			path, err := hooks.Path(cmd.Context(), rt.Git)
			if err != nil {
				return err
			}
			if installed {
				fmt.Fprintf(cmd.OutOrStdout(), "installed: %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "not installed: %s\n", path)
			}
			return nil
		},
	}
}
