package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

// NewRootCmd builds the gx command tree. load supplies the runtime each
// command runs against.
func NewRootCmd(load app.Loader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gx",
		Short:   "Short git workflows with a commit-message linter",
		Version: app.Version,
		Long: `gx wraps common git command sequences into short subcommands: commit with a
linted message, push and pull with remote detection, sync, rebase, merge and
cleanup. Arguments after -- are passed to the main git command of a workflow.`,
	}

	// Errors are printed once by main.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
	rootCmd.PersistentFlags().Bool("debug", false, "Print every git invocation")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(
		NewLintCmd(load),
		NewCommitCmd(load),
		NewCommitPushCmd(load),
		NewPushCmd(load),
		NewPushForceCmd(load),
		NewPullCmd(load),
		NewPullRebaseCmd(load),
		NewSyncCmd(load),
		NewRebaseCmd(load),
		NewRebaseRemoteCmd(load),
		NewMergeCmd(load),
		NewMergeToCmd(load),
		NewAmendCmd(load),
		NewRewordCmd(load),
		NewFixupCmd(load),
		NewUndoCmd(load),
		NewResetHardCmd(load),
		NewCleanupCmd(load),
		NewStashCmd(load),
		NewUnstashCmd(load),
		NewHookCmd(load),
		NewConfigCmd(load),
	)
	completion.CreateCompletionCommands(rootCmd)

	return rootCmd
}
