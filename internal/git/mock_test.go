package git

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockGitCommander is a test mock for the Commander interface.
// Note: We define this locally to avoid an import cycle with gittest.
type MockGitCommander struct {
	mock.Mock
}

// Ensure MockGitCommander implements Commander interface at compile time.
var _ Commander = (*MockGitCommander)(nil)

func (m *MockGitCommander) Run(ctx context.Context, args ...string) (string, error) {
	called := m.Called(toInterfaces(args)...)
	return called.String(0), called.Error(1)
}

func (m *MockGitCommander) Stream(ctx context.Context, args ...string) error {
	called := m.Called(append([]any{"stream"}, toInterfaces(args)...)...)
	return called.Error(0)
}

func toInterfaces(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func exitErr(code int) error {
	return &CommandError{ExitCode: code, Err: fmt.Errorf("exit status %d", code)}
}
