// pkg/uir_err/classification.go
//
// Error classification with exit codes. Extends UserError.

package uir_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - bad flags or config (exit 2)
	CategoryValidation
	// CategoryNetwork - backend or paste service unreachable (exit 1)
	CategoryNetwork
	// CategoryUser - user cancelled (exit 130)
	CategoryUser
)

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}
	return sb.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error category
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryUser:
		return 130
	case CategoryValidation:
		return 2
	default:
		return 1
	}
}

// GetExitCode returns 0 for nil and for expected user errors.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}
	if IsExpectedUserError(err) {
		return 0
	}
	return 1
}

// NewInterruptedError marks cause as the result of the user pressing Ctrl-C.
func NewInterruptedError(cause error) error {
	return &ClassifiedError{
		Category: CategoryUser,
		Message:  "interrupted",
		Cause:    cause,
	}
}

// IsNetworkError reports whether err failed to reach a remote service.
func IsNetworkError(err error) bool {
	var classified *ClassifiedError
	return errors.As(err, &classified) && classified.Category == CategoryNetwork
}

func NewValidationError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

func NewNetworkError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryNetwork,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}
