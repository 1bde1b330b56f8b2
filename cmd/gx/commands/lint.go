package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/lint"
)

func NewLintCmd(load app.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "lint <message>",
		Short:             "Check a commit message",
		Long:              `Check that a commit message follows <type>(<scope>): <description>. Nothing in the repository is touched.`,
		Example:           `  gx lint "feat(auth): add token refresh"`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: noCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := load(cmd, false); err != nil {
				return err
			}
			return lint.Check(args[0])
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for lint")

	return cmd
}
