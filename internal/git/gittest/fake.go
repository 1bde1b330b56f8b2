// Package gittest provides a scripted git.Commander for tests that must not
// touch a real repository.
package gittest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sqve/gx/internal/git"
)

// Response is the scripted result of one git invocation.
type Response struct {
	Output string
	Err    error
}

// Call records one invocation.
type Call struct {
	Args     []string
	Streamed bool
}

func (c Call) String() string {
	return strings.Join(c.Args, " ")
}

// Fake answers git invocations from a table keyed by the space-joined
// arguments. Unscripted invocations succeed with empty output.
type Fake struct {
	mu        sync.Mutex
	responses map[string]Response
	sequences map[string][]string
	calls     []Call
}

var _ git.Commander = (*Fake)(nil)

func New() *Fake {
	return &Fake{responses: make(map[string]Response), sequences: make(map[string][]string)}
}

// OnSequence scripts successive outputs of an invocation. The last output
// repeats once the others are used up.
func (f *Fake) OnSequence(args string, outputs ...string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sequences[args] = outputs
	return f
}

// On scripts a successful invocation.
func (f *Fake) On(args, output string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[args] = Response{Output: output}
	return f
}

// Fail scripts an invocation exiting with code and stderr.
func (f *Fake) Fail(args string, code int, stderr string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[args] = Response{Err: &git.CommandError{
		Args:     strings.Fields(args),
		Stderr:   stderr,
		ExitCode: code,
		Err:      fmt.Errorf("exit status %d", code),
	}}
	return f
}

// WithRemotes scripts `git remote`.
func (f *Fake) WithRemotes(remotes ...string) *Fake {
	return f.On("remote", strings.Join(remotes, "\n"))
}

// WithBranch scripts the current branch.
func (f *Fake) WithBranch(branch string) *Fake {
	return f.On("symbolic-ref --quiet --short HEAD", branch)
}

// Detached scripts a detached HEAD.
func (f *Fake) Detached() *Fake {
	return f.Fail("symbolic-ref --quiet --short HEAD", 1, "")
}

// Dirty scripts `git status --porcelain` with pending changes.
func (f *Fake) Dirty() *Fake {
	return f.On("status --porcelain", " M README.md")
}

func (f *Fake) Run(ctx context.Context, args ...string) (string, error) {
	return f.invoke(ctx, false, args)
}

func (f *Fake) Stream(ctx context.Context, args ...string) error {
	_, err := f.invoke(ctx, true, args)
	return err
}

func (f *Fake) invoke(ctx context.Context, streamed bool, args []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Args: append([]string(nil), args...), Streamed: streamed})
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := strings.Join(args, " ")
	if seq := f.sequences[key]; len(seq) > 0 {
		if len(seq) > 1 {
			f.sequences[key] = seq[1:]
		}
		return seq[0], nil
	}

	resp, ok := f.responses[key]
	if !ok {
		return "", nil
	}
	return resp.Output, resp.Err
}

// Calls returns the recorded invocations as space-joined strings.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

// Commands returns the streamed (state-changing) invocations only.
func (f *Fake) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, c := range f.calls {
		if c.Streamed {
			out = append(out, c.String())
		}
	}
	return out
}

// Called reports whether an invocation starting with prefix was made.
func (f *Fake) Called(prefix string) bool {
	for _, c := range f.Calls() {
		if c == prefix || strings.HasPrefix(c, prefix+" ") {
			return true
		}
	}
	return false
}

// IsCommandError reports whether err came from a scripted failure.
func IsCommandError(err error) bool {
	var cmdErr *git.CommandError
	return errors.As(err, &cmdErr)
}
