package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
)

func NewFixupCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixup <commit> [-- git-args...]",
		Short: "Fold all changes into an earlier commit",
		Long: `Commit all changes as a fixup of <commit> and autosquash it in place
without opening an editor. Arguments after -- go to git rebase.

Examples:
  gx fixup HEAD~2
  gx fixup a1b2c3d`,
		Args:              maxArgs(1),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Fixup(cmd.Context(), arg(positional, 0), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for fixup")

	return cmd
}
