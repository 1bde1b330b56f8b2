package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
)

func NewUndoCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo [count] [-- git-args...]",
		Short: "Undo recent commits, keeping their changes staged",
		Long: `Soft-reset the last <count> commits (default 1). Their changes stay staged.

Examples:
  gx undo     # Undo the last commit
  gx undo 3   # Undo the last three commits`,
		Args:              maxArgs(1),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Undo(cmd.Context(), arg(positional, 0), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for undo")

	return cmd
}
