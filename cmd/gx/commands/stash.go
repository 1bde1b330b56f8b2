package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
)

func NewStashCmd(load app.Loader) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:               "stash [-m message] [-- git-args...]",
		Short:             "Stash all changes including untracked files",
		Long:              `Stash staged, unstaged and untracked changes. Does nothing on a clean work tree.`,
		Args:              exactArgs(0),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			_, extra := splitArgs(cmd, args)
			return rt.Alias.Stash(cmd.Context(), message, extra)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Stash message")
	cmd.Flags().BoolP("help", "h", false, "Help for stash")

	return cmd
}

func NewUnstashCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "unstash [-- git-args...]",
		Short:             "Restore the most recent stash",
		Long:              `Pop the most recent stash entry. Warns when there is nothing to restore.`,
		Args:              exactArgs(0),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			_, extra := splitArgs(cmd, args)
			return rt.Alias.Unstash(cmd.Context(), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for unstash")

	return cmd
}
