package errors

import (
	"errors"
	"fmt"
)

func New(text string) error {
	return errors.New(text)
}

// Report whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Find the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithOperation names the high-level operation an error aborted. An error
// that already carries a code (including commit-message validation errors)
// keeps it; anything else becomes a GIT_OPERATION error.
func WithOperation(err error, operation string) error {
	if err == nil {
		return nil
	}

	var gxErr *GxError
	if As(err, &gxErr) || Is(err, ErrValidation) {
		return fmt.Errorf("%s failed: %w", operation, err)
	}

	return ErrGit(operation, err)
}
