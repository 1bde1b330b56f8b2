package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/completion"
)

// splitArgs separates positional arguments from those after "--", which
// are passed through to git untouched.
func splitArgs(cmd *cobra.Command, args []string) (positional, extra []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// rangeArgs is cobra.RangeArgs counting only arguments before "--".
func rangeArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		positional, _ := splitArgs(cmd, args)
		n := len(positional)
		if n < minArgs || n > maxArgs {
			if minArgs == maxArgs {
				return fmt.Errorf("accepts %d arg(s), received %d", minArgs, n)
			}
			return fmt.Errorf("accepts between %d and %d arg(s), received %d", minArgs, maxArgs, n)
		}
		return nil
	}
}

func maxArgs(n int) cobra.PositionalArgs { return rangeArgs(0, n) }

func exactArgs(n int) cobra.PositionalArgs { return rangeArgs(n, n) }

// arg returns positional[i], or "" when it was not given.
func arg(positional []string, i int) string {
	if i < len(positional) {
		return positional[i]
	}
	return ""
}

// completeArgs completes positional arguments from the repository the
// command would run in.
func completeArgs(load app.Loader, kinds ...completion.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		ctx := completion.NewCompletionContext(func(context.Context) (completion.Source, error) {
			rt, err := load(cmd, true)
			if err != nil {
				return nil, err
			}
			return rt.Git, nil
		})
		return ctx.Args(kinds...)(cmd, args, toComplete)
	}
}

func noCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}
