package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sqve/gx/internal/logger"
)

// CompletionTimeout is the maximum time to wait for completion operations.
const CompletionTimeout = 2 * time.Second

// Source answers the repository queries that positional arguments complete
// from.
type Source interface {
	ListBranches(ctx context.Context) ([]string, error)
	ListRemotes(ctx context.Context) ([]string, error)
}

// Opener returns the Source for the working directory. It fails outside a
// repository, in which case nothing is completed.
type Opener func(ctx context.Context) (Source, error)

// CompletionContext provides context for completion operations.
type CompletionContext struct {
	Open    Opener
	Timeout time.Duration
}

func NewCompletionContext(open Opener) *CompletionContext {
	return &CompletionContext{
		Open:    open,
		Timeout: CompletionTimeout,
	}
}

// WithTimeout runs fn against the repository with the completion deadline
// applied to every git invocation it makes.
func (c *CompletionContext) WithTimeout(parent context.Context, fn func(context.Context, Source) ([]string, error)) ([]string, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, c.Timeout)
	defer cancel()

	src, err := c.Open(ctx)
	if err != nil {
		return nil, err
	}

	result, err := fn(ctx, src)
	if ctx.Err() != nil {
		return nil, fmt.Errorf("completion operation timed out")
	}
	return result, err
}

func FilterCompletions(completions []string, toComplete string) []string {
	if toComplete == "" {
		return completions
	}

	var filtered []string
	for _, completion := range completions {
		if strings.HasPrefix(completion, toComplete) {
			filtered = append(filtered, completion)
		}
	}

	return filtered
}

// Kind is the completion source of one positional argument.
type Kind int

const (
	None Kind = iota
	Branch
	Remote
)

// Args returns a cobra ValidArgsFunction completing the i-th positional
// argument from kinds[i]. Positions past the end complete nothing.
func (c *CompletionContext) Args(kinds ...Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= len(kinds) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		switch kinds[len(args)] {
		case Branch:
			return BranchCompletion(c, cmd, args, toComplete)
		case Remote:
			return RemoteCompletion(c, cmd, args, toComplete)
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
}

func RemoteCompletion(ctx *CompletionContext, cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	remotes, err := ctx.WithTimeout(cmd.Context(), func(ctx context.Context, src Source) ([]string, error) {
		return src.ListRemotes(ctx)
	})
	if err != nil {
		logger.Debug("Remote completion failed: %v", err)
		return nil, cobra.ShellCompDirectiveError
	}

	filtered := FilterCompletions(remotes, toComplete)
	logger.Debug("Remote completion: %d of %d match %q", len(filtered), len(remotes), toComplete)
	return filtered, cobra.ShellCompDirectiveNoFileComp
}

func CreateCompletionCommands(rootCmd *cobra.Command) {
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `Generate completion script for gx.

To enable completion, run the appropriate command for your shell:

Bash:
  gx completion bash > /etc/bash_completion.d/gx
  # or
  gx completion bash > ~/.bash_completion.d/gx

Zsh:
  gx completion zsh > "${fpath[1]}/_gx"
  # or add to ~/.zshrc:
  echo 'autoload -U compinit; compinit' >> ~/.zshrc

Fish:
  gx completion fish > ~/.config/fish/completions/gx.fish

PowerShell:
  gx completion powershell > gx.ps1
  # then source it in your profile`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			switch shell {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported shell: %s", shell)
			}
		},
	}

	rootCmd.AddCommand(completionCmd)
}
