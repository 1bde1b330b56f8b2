package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchFromRef(t *testing.T) {
	tests := []struct {
		ref    string
		want   string
		wantOK bool
	}{
		{"refs/heads/main", "main", true},
		{"refs/heads/feat/login", "feat/login", true},
		{"refs/remotes/origin/main", "main", true},
		{"refs/remotes/upstream/fix/typo", "fix/typo", true},
		{"refs/remotes/origin/HEAD", "", false},
		{"refs/remotes/origin", "", false},
		{"refs/tags/v1.0.0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := branchFromRef(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_ListBranches(t *testing.T) {
	m := &MockGitCommander{}
	m.On("Run", "for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes").Return(
		"refs/heads/main\nrefs/heads/dev\nrefs/remotes/origin/HEAD\nrefs/remotes/origin/main\nrefs/remotes/origin/release\n", nil)

	branches, err := NewClient(m).ListBranches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "dev", "release"}, branches)
}
