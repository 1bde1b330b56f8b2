package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
)

func NewAmendCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "amend [-- git-args...]",
		Short:             "Fold all changes into the last commit",
		Long:              `Stage all changes and amend the last commit, keeping its message.`,
		Args:              exactArgs(0),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			_, extra := splitArgs(cmd, args)
			return rt.Alias.Amend(cmd.Context(), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for amend")

	return cmd
}

func NewRewordCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reword <message> [-- git-args...]",
		Short:             "Replace the last commit message",
		Long:              `Check the new message, then amend the last commit with it. Unstaged changes are left alone.`,
		Args:              exactArgs(1),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Reword(cmd.Context(), positional[0], extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for reword")

	return cmd
}
