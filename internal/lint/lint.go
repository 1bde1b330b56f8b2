// Package lint validates commit messages against the conventional-commit
// subset gx enforces:
//
//	<type>(<scope>): <description>
//
// where type is one of Types(), scope is optional and alphanumeric, and the
// description is any non-empty text after ": ".
package lint

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	gxerrors "github.com/sqve/gx/internal/errors"
	"github.com/sqve/gx/internal/logger"
)

var types = []string{"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style"}

var pattern = regexp.MustCompile(`^(` + strings.Join(types, "|") + `)(\(([A-Za-z0-9]+)\))?: (.+)$`)

// Subjects git writes itself. Accepted when checking a message file from the
// commit-msg hook so merges, reverts and autosquash rebases are not blocked.
var generatedPrefixes = []string{"Merge ", "Revert \"", "fixup! ", "squash! ", "amend! "}

// Message is a commit subject split into its parts.
type Message struct {
	Type        string
	Scope       string
	Description string
}

func (m Message) String() string {
	if m.Scope == "" {
		return fmt.Sprintf("%s: %s", m.Type, m.Description)
	}
	return fmt.Sprintf("%s(%s): %s", m.Type, m.Scope, m.Description)
}

// ValidationError reports a message that does not match the grammar.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "commit message is empty"
	}
	return fmt.Sprintf("invalid commit message %q", e.Message)
}

// Is lets errors.Is match the VALIDATION error code.
func (e *ValidationError) Is(target error) bool {
	return target == gxerrors.ErrValidation
}

// Guidance explains the expected format.
func (e *ValidationError) Guidance() string {
	var b strings.Builder
	b.WriteString("Commit messages must follow: <type>(<scope>): <description>\n\n")
	fmt.Fprintf(&b, "  type         %s\n", strings.Join(types, ", "))
	b.WriteString("  scope        optional, letters and digits only\n")
	b.WriteString("  description  required, separated from the prefix by \": \"\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("  feat(auth): add token refresh\n")
	b.WriteString("  fix: handle empty config file\n")
	return b.String()
}

// Types returns the accepted commit types in order.
func Types() []string {
	return append([]string(nil), types...)
}

// Validate returns nil if msg matches the grammar, otherwise a
// *ValidationError.
func Validate(msg string) error {
	_, err := Parse(msg)
	return err
}

// Parse splits a valid message into its parts.
func Parse(msg string) (Message, error) {
	m := pattern.FindStringSubmatch(msg)
	if m == nil {
		return Message{}, &ValidationError{Message: msg}
	}
	return Message{Type: m[1], Scope: m[3], Description: m[4]}, nil
}

// Check validates msg and reports the outcome: a success line when it
// matches, the format guidance when it does not. The returned error is left
// for the caller to report.
func Check(msg string) error {
	if err := Validate(msg); err != nil {
		var verr *ValidationError
		if gxerrors.As(err, &verr) {
			logger.Block(verr.Guidance())
		}
		return err
	}
	logger.Success("Commit message is valid")
	return nil
}

// CheckFile validates the subject of a commit message file as written by
// git for the commit-msg hook. Comment lines and leading blank lines are
// skipped.
func CheckFile(path string) error {
	subject, err := readSubject(path)
	if err != nil {
		return err
	}

	for _, prefix := range generatedPrefixes {
		if strings.HasPrefix(subject, prefix) {
			logger.Debug("Skipping generated subject %q", subject)
			return nil
		}
	}

	return Check(subject)
}

func readSubject(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is supplied by git
	if err != nil {
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	return "", nil
}
