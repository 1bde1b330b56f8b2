package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewResetHardCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reset-hard [ref] [-- git-args...]",
		Short:             "Discard all changes after confirmation",
		Long:              `Hard-reset the work tree to <ref> (default HEAD). Asks first unless --yes is given or confirm is disabled.`,
		Args:              maxArgs(1),
		ValidArgsFunction: completeArgs(load, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.ResetHard(cmd.Context(), arg(positional, 0), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for reset-hard")

	return cmd
}
