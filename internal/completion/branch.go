package completion

import (
	"context"
	"slices"

	"github.com/spf13/cobra"
	"github.com/sqve/gx/internal/logger"
)

func BranchCompletion(ctx *CompletionContext, cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	branches, err := ctx.WithTimeout(cmd.Context(), func(ctx context.Context, src Source) ([]string, error) {
		return src.ListBranches(ctx)
	})
	if err != nil {
		logger.Debug("Branch completion failed: %v", err)
		return nil, cobra.ShellCompDirectiveError
	}

	filtered := FilterCompletions(prioritizeBranches(branches), toComplete)

	logger.Debug("Branch completion: %d of %d match %q", len(filtered), len(branches), toComplete)
	return filtered, cobra.ShellCompDirectiveNoFileComp
}

// prioritizeBranches lists the usual trunk names first, then the rest sorted.
func prioritizeBranches(branches []string) []string {
	if len(branches) == 0 {
		return branches
	}

	priorityBranches := []string{"main", "master", "develop", "development"}

	var prioritized []string
	var regular []string
	for _, priority := range priorityBranches {
		if slices.Contains(branches, priority) {
			prioritized = append(prioritized, priority)
		}
	}
	for _, branch := range branches {
		if !slices.Contains(prioritized, branch) {
			regular = append(regular, branch)
		}
	}

	slices.Sort(regular)
	return append(prioritized, regular...)
}
