package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/sqve/gx/cmd/gx/commands"
	"github.com/sqve/gx/internal/app"
	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCmd(app.Load)
	executed, err := rootCmd.ExecuteContextC(ctx)
	stop()

	if err != nil {
		var inv gxerrors.Invocation
		if executed != nil && executed != rootCmd {
			inv = invocationOf(executed.Use)
		}
		reportError(err, inv)
		os.Exit(1)
	}
}

// invocationOf derives hint details from a cobra Use line such as
// "commit-push <message> [remote] [branch]".
func invocationOf(use string) gxerrors.Invocation {
	fields := strings.Fields(use)
	if len(fields) == 0 {
		return gxerrors.Invocation{}
	}

	prefix := fields[:1]
	for _, field := range fields[1:] {
		if !strings.HasPrefix(field, "<") {
			break
		}
		prefix = append(prefix, field)
	}

	return gxerrors.Invocation{
		Prefix:  strings.Join(prefix, " "),
		Targets: slices.Contains(fields, "[remote]"),
	}
}

// reportError prints err once, followed by a hint for known failure classes.
func reportError(err error, inv gxerrors.Invocation) {
	logger.Error("%v", err)

	hint, ok := gxerrors.HintFor(err, inv)
	if !ok {
		return
	}
	lines := []string{hint.Suggestion}
	for _, example := range hint.Examples {
		lines = append(lines, "  "+example)
	}
	logger.Block(strings.Join(lines, "\n"))
}
