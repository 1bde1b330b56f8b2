package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sqve/gx/internal/logger"
)

// Commander abstracts git command execution so tests can substitute a fake
// for the git binary.
type Commander interface {
	// Run executes git with captured output and returns stdout with the
	// trailing newline removed. Queries use Run.
	Run(ctx context.Context, args ...string) (string, error)

	// Stream executes git with stdin, stdout and stderr attached to the
	// terminal so git's own progress and prompts stay visible.
	// State-changing commands use Stream.
	Stream(ctx context.Context, args ...string) error
}

// CommandError describes a git invocation that exited non-zero.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the git exit code carried by err, or -1.
func ExitCode(err error) int {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return -1
}

// LiveGitCommander runs the git binary found in PATH.
type LiveGitCommander struct {
	// Dir is the working directory; empty means the process cwd.
	Dir string
	// Timeout bounds each invocation; zero disables it.
	Timeout time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLiveGitCommander creates a commander bound to the process streams.
func NewLiveGitCommander(dir string, timeout time.Duration) *LiveGitCommander {
	return &LiveGitCommander{
		Dir:     dir,
		Timeout: timeout,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func (c *LiveGitCommander) command(ctx context.Context, args []string) (*exec.Cmd, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if c.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
	}

	logger.GitCommand(args)
	cmd := exec.CommandContext(ctx, "git", args...) //nolint:gosec // Arguments are passed to git, not a shell
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	return cmd, cancel
}

func (c *LiveGitCommander) Run(ctx context.Context, args ...string) (string, error) {
	cmd, cancel := c.command(ctx, args)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.Debug("Finished in %s", time.Since(start).Round(time.Millisecond))
	if err != nil {
		return strings.TrimRight(stdout.String(), "\n"), newCommandError(cmd, args, strings.TrimSpace(stderr.String()), err)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

func (c *LiveGitCommander) Stream(ctx context.Context, args ...string) error {
	cmd, cancel := c.command(ctx, args)
	defer cancel()

	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return newCommandError(cmd, args, "", err)
	}
	return nil
}

func newCommandError(cmd *exec.Cmd, args []string, stderr string, err error) *CommandError {
	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	return &CommandError{
		Args:     args,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}
