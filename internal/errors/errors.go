package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for programmatic handling
const (
	// Input errors
	ErrCodeValidation      = "VALIDATION"
	ErrCodeMissingArgument = "MISSING_ARGUMENT"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"

	// Resolution errors
	ErrCodeNoRemote        = "NO_REMOTE"
	ErrCodeAmbiguousRemote = "AMBIGUOUS_REMOTE"
	ErrCodeDetachedHead    = "DETACHED_HEAD"
	ErrCodeSameBranch      = "SAME_BRANCH"

	// Repository and git errors
	ErrCodeNotARepository      = "NOT_A_REPOSITORY"
	ErrCodeGitOperation        = "GIT_OPERATION"
	ErrCodeOperationInProgress = "OPERATION_IN_PROGRESS"

	// Operator errors
	ErrCodeAborted = "ABORTED"
)

// GxError represents a standardized error with code and context.
//
// Every failure surfaced to the operator carries one of the ErrCode*
// constants so callers can branch on the failure class:
//
//	if errors.IsGxError(err, errors.ErrCodeAmbiguousRemote) {
//	  // ask for an explicit remote
//	}
type GxError struct {
	Code    string         // Standardized error code (see ErrCode* constants)
	Message string         // Human-readable error message
	Cause   error          // Underlying error that caused this error
	Context map[string]any // Additional contextual information
}

// Error implements the error interface
func (e *GxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *GxError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code
func (e *GxError) Is(target error) bool {
	if t, ok := target.(*GxError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *GxError) WithContext(key string, value any) *GxError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewGxError creates a new standardized error
func NewGxError(code, message string, cause error) *GxError {
	return &GxError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewGxErrorf creates a new standardized error with formatted message
func NewGxErrorf(code string, cause error, format string, args ...any) *GxError {
	return &GxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Sentinels for errors.Is comparisons by code.
var (
	ErrValidation      = &GxError{Code: ErrCodeValidation}
	ErrMissingArgument = &GxError{Code: ErrCodeMissingArgument}
	ErrInvalidArgument = &GxError{Code: ErrCodeInvalidArgument}
	ErrNoRemote        = &GxError{Code: ErrCodeNoRemote}
	ErrAmbiguousRemote = &GxError{Code: ErrCodeAmbiguousRemote}
	ErrDetachedHead    = &GxError{Code: ErrCodeDetachedHead}
	ErrSameBranch      = &GxError{Code: ErrCodeSameBranch}
	ErrNotARepository  = &GxError{Code: ErrCodeNotARepository}
	ErrGitOperation    = &GxError{Code: ErrCodeGitOperation}
	ErrInProgress      = &GxError{Code: ErrCodeOperationInProgress}
	ErrAborted         = &GxError{Code: ErrCodeAborted}
)

// Input errors
func ErrMissing(name, operation string) *GxError {
	return NewGxErrorf(ErrCodeMissingArgument, nil, "%s requires a %s", operation, name).
		WithContext("argument", name).
		WithContext("operation", operation)
}

func ErrInvalid(name, value, reason string) *GxError {
	return NewGxErrorf(ErrCodeInvalidArgument, nil, "invalid %s %q: %s", name, value, reason).
		WithContext("argument", name).
		WithContext("value", value)
}

// Resolution errors
func ErrRemoteMissing() *GxError {
	return NewGxError(ErrCodeNoRemote, "no remote configured; add one with 'git remote add' or pass a remote name", nil)
}

func ErrRemoteAmbiguous(remotes []string) *GxError {
	return NewGxErrorf(ErrCodeAmbiguousRemote, nil, "multiple remotes configured (%s); pass a remote name", strings.Join(remotes, ", ")).
		WithContext("remotes", remotes)
}

func ErrHeadDetached() *GxError {
	return NewGxError(ErrCodeDetachedHead, "HEAD is detached; pass a branch name", nil)
}

func ErrMergeSameBranch(branch string) *GxError {
	return NewGxErrorf(ErrCodeSameBranch, nil, "cannot merge %s into itself", branch).
		WithContext("branch", branch)
}

// Repository and git errors
func ErrNotRepo(path string, cause error) *GxError {
	return NewGxErrorf(ErrCodeNotARepository, cause, "not a git repository: %s", path).
		WithContext("path", path)
}

func ErrGit(operation string, cause error) *GxError {
	return NewGxErrorf(ErrCodeGitOperation, cause, "%s failed", operation).
		WithContext("operation", operation)
}

func ErrOperationInProgress(operation, ongoing string) *GxError {
	return NewGxErrorf(ErrCodeOperationInProgress, nil, "cannot %s while %s; finish or abort it first", operation, ongoing).
		WithContext("operation", operation).
		WithContext("ongoing", ongoing)
}

// Operator errors
func ErrDeclined(operation string) *GxError {
	return NewGxErrorf(ErrCodeAborted, nil, "%s aborted", operation).
		WithContext("operation", operation)
}

// Helper function to check if an error is a specific gx error
func IsGxError(err error, code string) bool {
	var gxErr *GxError
	if errors.As(err, &gxErr) {
		return gxErr.Code == code
	}
	return false
}

// Helper function to get the gx error code from any error
func GetErrorCode(err error) string {
	var gxErr *GxError
	if errors.As(err, &gxErr) {
		return gxErr.Code
	}
	return ""
}

// Helper function to get error context
func GetErrorContext(err error) map[string]any {
	var gxErr *GxError
	if errors.As(err, &gxErr) {
		return gxErr.Context
	}
	return nil
}
