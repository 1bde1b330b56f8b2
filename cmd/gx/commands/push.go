package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewPushCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [remote] [branch] [-- git-args...]",
		Short: "Push a branch",
		Long: `Push a branch to a remote.
Without a remote the only configured remote is used; without a branch the
current branch is used.

Examples:
  gx push                    # Current branch to the only remote
  gx push upstream           # Current branch to upstream
  gx push origin main -- -u  # Set upstream while pushing`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Push(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for push")

	return cmd
}

func NewPushForceCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "push-force [remote] [branch] [-- git-args...]",
		Aliases: []string{"pf"},
		Short:   "Force-push a branch after confirmation",
		Long: `Overwrite a remote branch with the local one.
Uses --force-with-lease instead of --force when push.force_with_lease is set.
Asks first unless --yes is given or confirm is disabled.`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.PushForce(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for push-force")

	return cmd
}
