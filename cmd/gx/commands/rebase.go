package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewRebaseCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "rebase <branch> [-- git-args...]",
		Short:             "Rebase the current branch onto another",
		Long:              `Rebase the current branch onto <branch>. Refused while another merge or rebase is unfinished.`,
		Args:              maxArgs(1),
		ValidArgsFunction: completeArgs(load, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Rebase(cmd.Context(), arg(positional, 0), extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for rebase")

	return cmd
}

func NewRebaseRemoteCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebase-remote [remote] [branch] [-- git-args...]",
		Short: "Fetch and rebase onto a remote branch",
		Long: `Fetch a remote and rebase the current branch onto <remote>/<branch>.

Examples:
  gx rebase-remote               # Onto the current branch of the only remote
  gx rebase-remote upstream main # Onto upstream/main`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.RebaseRemote(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for rebase-remote")

	return cmd
}
