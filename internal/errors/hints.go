package errors

import (
	"slices"
	"strings"
)

// Hint is an operator-facing suggestion attached to an error code.
// TargetExamples pass [remote] [branch] and only apply to commands that
// accept them.
type Hint struct {
	Suggestion     string
	Examples       []string
	TargetExamples []string
}

// Invocation describes the failed command for hint examples.
type Invocation struct {
	Prefix  string // name plus required leading arguments, e.g. "commit-push <message>"
	Targets bool   // accepts [remote] [branch]
}

var hints = map[string]Hint{
	ErrCodeNoRemote: {
		Suggestion: "Add a remote or pass one explicitly",
		Examples: []string{
			"git remote add origin <url>",
		},
		TargetExamples: []string{
			"gx %s origin",
		},
	},
	ErrCodeAmbiguousRemote: {
		Suggestion: "Pass the remote to use explicitly",
		TargetExamples: []string{
			"gx %s origin",
			"gx %s upstream main",
		},
	},
	ErrCodeDetachedHead: {
		Suggestion: "Check out a branch or pass the branch explicitly",
		Examples: []string{
			"git switch main",
		},
		TargetExamples: []string{
			"gx %s origin main",
		},
	},
	ErrCodeSameBranch: {
		Suggestion: "Check out the branch you want to merge into first, or use merge-to",
		Examples: []string{
			"gx merge-to main",
		},
	},
	ErrCodeNotARepository: {
		Suggestion: "Run gx inside a git work tree",
		Examples: []string{
			"cd /path/to/repo && gx %s",
		},
	},
	ErrCodeOperationInProgress: {
		Suggestion: "Resolve the pending operation with git before running another workflow",
		Examples: []string{
			"git rebase --continue",
			"git merge --abort",
		},
	},
}

// HintFor returns the hint for err's code with %s in examples replaced by
// the failed command's prefix. ok is false when err carries no code or the
// code has no hint.
func HintFor(err error, inv Invocation) (hint Hint, ok bool) {
	code := GetErrorCode(err)
	if code == "" {
		return Hint{}, false
	}

	h, exists := hints[code]
	if !exists {
		return Hint{}, false
	}

	examples := h.Examples
	if inv.Targets {
		examples = append(slices.Clone(examples), h.TargetExamples...)
	}

	hint = Hint{Suggestion: h.Suggestion}
	for _, example := range examples {
		hint.Examples = append(hint.Examples, strings.TrimSpace(strings.ReplaceAll(example, "%s", inv.Prefix)))
	}
	return hint, true
}
