package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqve/gx/internal/fs"
)

// TempDir returns a temp directory with symlinks resolved.
// On macOS, /var symlinks to /private/var which causes path mismatches
// when comparing with git output.
func TempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}
	return resolved
}

// WriteFile writes content to path, creating parent dirs. Fails test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	WriteFileMode(t, path, content, fs.FileGit)
}

// WriteFileMode writes content with specific permissions.
func WriteFileMode(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fs.DirGit); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// MustExec runs a command in dir, fails on error, returns trimmed stdout.
func MustExec(t *testing.T, dir, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...) // nolint:gosec
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("%s %v failed: %v", name, args, err)
	}
	return strings.TrimSpace(string(out))
}

// Chdir changes the working directory for the rest of the test.
// WARNING: Not safe for use with t.Parallel() as it changes process cwd.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Logf("warning: failed to restore cwd: %v", err)
		}
	})
}

// RequireGit skips the test when no git binary is available.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}
