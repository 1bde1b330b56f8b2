package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sqve/gx/internal/app"
	"github.com/sqve/gx/internal/config"
	"github.com/sqve/gx/internal/git/gittest"
	"github.com/sqve/gx/internal/logger"
	"github.com/sqve/gx/internal/prompt"
	"github.com/sqve/gx/internal/testutil"
)

// harness runs the command tree against a scripted repository.
type harness struct {
	fake    *gittest.Fake
	cfg     *config.Config
	confirm prompt.Confirmer
	root    string
	loadErr error
	log     *bytes.Buffer
}

func newHarness(t *testing.T, fake *gittest.Fake) *harness {
	t.Helper()

	h := &harness{
		fake:    fake,
		cfg:     config.DefaultConfig(),
		confirm: prompt.Always{},
		root:    t.TempDir(),
		log:     &bytes.Buffer{},
	}

	restore := logger.SetOutput(h.log)
	logger.Init(true, false)
	config.Apply(&config.Config{Plain: true})
	t.Cleanup(func() {
		restore()
		logger.Init(false, false)
		config.Apply(&config.Config{})
	})

	return h
}

func (h *harness) load(_ *cobra.Command, needRepo bool) (*app.Runtime, error) {
	if h.loadErr != nil && needRepo {
		return nil, h.loadErr
	}
	return app.NewRuntime(h.cfg, h.root, h.fake, h.confirm), nil
}

// run executes gx with args and returns the command's own output.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return testutil.ExecuteCommand(t, NewRootCmd(h.load), args...)
}

// origin scripts a repository with one remote and branch checked out.
func origin(branch string) *gittest.Fake {
	return gittest.New().WithRemotes("origin").WithBranch(branch)
}
