package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// Strict permissions (gosec-compliant defaults)
	DirStrict  = 0o750 // rwxr-x---
	FileStrict = 0o600 // rw-------

	// Git-compatible permissions
	DirGit   = 0o755 // rwxr-xr-x
	FileExec = 0o755 // rwxr-xr-x - hook scripts
	FileGit  = 0o644 // rw-r--r-- - files meant to be committed
)

// ErrExists is returned by WriteFileExclusive when the target already exists.
var ErrExists = errors.New("file already exists")

// FileExists checks if path exists and is a file (not a directory)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// PathExists reports whether anything exists at path
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file then renaming.
// Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), DirGit); err != nil {
		return err
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d.%d", path, os.Getpid(), time.Now().UnixNano())
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}
	// WriteFile honours umask; hooks must stay executable.
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// WriteFileExclusive writes data to path, failing with ErrExists if it already
// exists. O_EXCL avoids a stat-then-write race.
func WriteFileExclusive(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm) // nolint:gosec // Path is built by the caller
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path) // Clean up partial file
		return err
	}
	return f.Close()
}
