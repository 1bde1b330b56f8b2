package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewSyncCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [remote] [branch] [-- git-args...]",
		Short: "Reset a branch to its remote state",
		Long: `Make a local branch identical to its remote counterpart.

Local changes are stashed first and restored at the end. The branch is
checked out and hard-reset to <remote>/<branch>, then stale remote-tracking
branches are pruned. Asks first unless --yes is given or confirm is disabled.
Arguments after -- go to git reset.

Examples:
  gx sync               # Current branch from the only remote
  gx sync upstream main # main from upstream`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Sync(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for sync")

	return cmd
}
