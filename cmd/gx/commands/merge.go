package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewMergeCmd(load app.Loader) *cobra.Command {
	var noFF bool

	cmd := &cobra.Command{
		Use:   "merge <branch> [--no-ff] [-- git-args...]",
		Short: "Merge a branch into the current one",
		Long: `Merge <branch> into the current branch.
Merging a branch into itself is refused before git runs.

Examples:
  gx merge feature/auth
  gx merge feature/auth --no-ff  # Always create a merge commit`,
		Args:              maxArgs(1),
		ValidArgsFunction: completeArgs(load, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Merge(cmd.Context(), arg(positional, 0), mergeNoFF(cmd, rt, noFF), extra)
		},
	}

	cmd.Flags().BoolVar(&noFF, "no-ff", false, "Create a merge commit even when a fast-forward is possible")
	cmd.Flags().BoolP("help", "h", false, "Help for merge")

	return cmd
}

func NewMergeToCmd(load app.Loader) *cobra.Command {
	var noFF bool

	cmd := &cobra.Command{
		Use:   "merge-to <target> [--no-ff] [-- git-args...]",
		Short: "Merge the current branch into another",
		Long: `Check out <target> and merge the previously current branch into it.
Targeting the current branch is refused before git runs.

Examples:
  gx merge-to main          # Finish a feature branch
  gx merge-to main --no-ff  # Keep the feature as a merge commit`,
		Args:              maxArgs(1),
		ValidArgsFunction: completeArgs(load, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.MergeTo(cmd.Context(), arg(positional, 0), mergeNoFF(cmd, rt, noFF), extra)
		},
	}

	cmd.Flags().BoolVar(&noFF, "no-ff", false, "Create a merge commit even when a fast-forward is possible")
	cmd.Flags().BoolP("help", "h", false, "Help for merge-to")

	return cmd
}

// mergeNoFF prefers an explicit --no-ff over the merge.no_ff setting.
func mergeNoFF(cmd *cobra.Command, rt *app.Runtime, flag bool) bool {
	if cmd.Flags().Changed("no-ff") {
		return flag
	}
	return rt.Config.Merge.NoFF
}
