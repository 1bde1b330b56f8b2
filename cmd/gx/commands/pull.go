package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewPullCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "pull [remote] [branch] [-- git-args...]",
		Short:             "Pull a branch",
		Long:              `Pull a branch from a remote, detecting either when omitted.`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Pull(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for pull")

	return cmd
}

func NewPullRebaseCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "pull-rebase [remote] [branch] [-- git-args...]",
		Aliases:           []string{"pr"},
		Short:             "Pull a branch with --rebase",
		Long:              `Pull a branch from a remote and rebase local commits onto it.`,
		Args:              maxArgs(2),
		ValidArgsFunction: completeArgs(load, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.PullRebase(cmd.Context(), positional, extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for pull-rebase")

	return cmd
}
