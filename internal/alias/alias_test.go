package alias

import (
	"bytes"
	"testing"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/git"
	"github.com/sqve/gx/internal/git/gittest"
	"github.com/sqve/gx/internal/logger"
)

// stubConfirm records questions and answers with err.
type stubConfirm struct {
	err   error
	asked []string
}

func (s *stubConfirm) Confirm(operation, question string) error {
	s.asked = append(s.asked, operation)
	return s.err
}

func declined() *stubConfirm {
	return &stubConfirm{err: gxerrors.ErrDeclined("test")}
}

type fixture struct {
	fake    *gittest.Fake
	confirm *stubConfirm
	opts    Options
	out     *bytes.Buffer
	runner  *Runner
}

func newFixture(t *testing.T, fake *gittest.Fake, opts ...func(*fixture)) *fixture {
	t.Helper()

	var buf bytes.Buffer
	restore := logger.SetOutput(&buf)
	logger.Init(true, false)
	t.Cleanup(func() {
		restore()
		logger.Init(false, false)
	})

	f := &fixture{fake: fake, confirm: &stubConfirm{}, out: &buf}
	for _, opt := range opts {
		opt(f)
	}
	f.runner = New(git.NewClient(fake), f.confirm, f.opts)
	return f
}

func withConfirm(c *stubConfirm) func(*fixture) {
	return func(f *fixture) { f.confirm = c }
}

func withLease() func(*fixture) {
	return func(f *fixture) { f.opts.ForceWithLease = true }
}

// origin scripts the common single-remote repository on branch.
func origin(branch string) *gittest.Fake {
	return gittest.New().WithRemotes("origin").WithBranch(branch)
}
