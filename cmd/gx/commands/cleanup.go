package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
)

func NewCleanupCmd(load app.Loader) *cobra.Command {
	var untracked bool

	cmd := &cobra.Command{
		Use:   "cleanup [--untracked] [-- git-args...]",
		Short: "Prune remotes and garbage-collect",
		Long: `Prune stale remote-tracking branches of every remote and run git gc.
With --untracked, untracked files and directories are deleted too, after
confirmation. Arguments after -- go to git gc.`,
		Args:              exactArgs(0),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			_, extra := splitArgs(cmd, args)
			return rt.Alias.Cleanup(cmd.Context(), untracked, extra)
		},
	}

	cmd.Flags().BoolVarP(&untracked, "untracked", "u", false, "Also delete untracked files (git clean -fd)")
	cmd.Flags().BoolP("help", "h", false, "Help for cleanup")

	return cmd
}
