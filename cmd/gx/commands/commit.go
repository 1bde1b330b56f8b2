package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

func NewCommitCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <message> [-- git-args...]",
		Short: "Stage everything and commit with a linted message",
		Long: `Stage all changes, check the message and commit.
The commit never runs when the message is invalid.

Examples:
  gx commit "fix(cli): exit non-zero on failure"
  gx commit "feat: add sync" -- --no-verify      # Extra arguments for git commit`,
		Args:              exactArgs(1),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.Commit(cmd.Context(), positional[0], extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for commit")

	return cmd
}

func NewCommitPushCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commit-push <message> [remote] [branch] [-- git-args...]",
		Aliases: []string{"cp"},
		Short:   "Commit, then push",
		Long: `Run the commit workflow, then push the branch.
Nothing is pushed when the commit fails. Arguments after -- go to git push.

Examples:
  gx cp "docs: update readme"               # Push to the only remote
  gx cp "docs: update readme" upstream dev  # Explicit remote and branch`,
		Args:              rangeArgs(1, 3),
		ValidArgsFunction: completeArgs(load, completion.None, completion.Remote, completion.Branch),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := load(cmd, true)
			if err != nil {
				return err
			}
			positional, extra := splitArgs(cmd, args)
			return rt.Alias.CommitPush(cmd.Context(), positional[0], positional[1:], extra)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for commit-push")

	return cmd
}
