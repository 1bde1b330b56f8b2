package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqve/gx/internal/fs"
	"github.com/sqve/gx/internal/testutil"
)

// TestRepo provides a test git repository with proper configuration
type TestRepo struct {
	t    *testing.T
	Dir  string
	Path string
}

// NewTestRepo creates a repository with one commit on branch (default "main").
func NewTestRepo(t *testing.T, branchName ...string) *TestRepo {
	t.Helper()
	testutil.RequireGit(t)

	dir := testutil.TempDir(t)
	repoPath := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repoPath, fs.DirGit); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}

	branch := "main"
	if len(branchName) > 0 && branchName[0] != "" {
		branch = branchName[0]
	}

	r := &TestRepo{t: t, Dir: dir, Path: repoPath}
	r.Git("init", "-b", branch)
	r.Git("config", "commit.gpgsign", "false")
	r.Git("config", "user.email", "test@example.com")
	r.Git("config", "user.name", "Test User")

	r.WriteFile("test.txt", "test")
	r.Git("add", ".")
	r.Git("commit", "-m", "chore: initial commit")

	return r
}

// Git runs git in the repository and returns trimmed stdout.
func (r *TestRepo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec
	cmd.Dir = r.Path
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// AddBareRemote creates a bare repository, registers it as remote name and
// pushes the current branch to it. Returns the bare repository path.
func (r *TestRepo) AddBareRemote(name string) string {
	r.t.Helper()
	bare := filepath.Join(r.Dir, name+".git")
	testutil.MustExec(r.t, r.Dir, "git", "init", "--bare", bare)
	r.Git("remote", "add", name, bare)
	r.Git("push", "--quiet", "-u", name, "HEAD")
	return bare
}

// AddRemote adds a remote to the repository
func (r *TestRepo) AddRemote(name, url string) {
	r.t.Helper()
	r.Git("remote", "add", name, url)
}

// CreateBranch creates a new branch at the current HEAD
func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// Checkout switches to a branch
func (r *TestRepo) Checkout(name string) {
	r.t.Helper()
	r.Git("checkout", "--quiet", name)
}

// WriteFile writes content to a file in the repository
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	testutil.WriteFile(r.t, filepath.Join(r.Path, name), content)
}

// Commit stages everything and commits with message
func (r *TestRepo) Commit(message string) {
	r.t.Helper()
	r.Git("add", "--all")
	r.Git("commit", "--quiet", "-m", message)
}

// Head returns the subject of the HEAD commit
func (r *TestRepo) Head() string {
	r.t.Helper()
	return r.Git("log", "-1", "--format=%s")
}
