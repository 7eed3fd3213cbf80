// pkg/uir_err/types.go

package uir_err

import "errors"

// ErrPromptDeclined is returned by prompt implementations when the user
// closes a dialog without answering.
var ErrPromptDeclined = errors.New("prompt declined")

// ErrNoDevice marks operations that need a device codename but got none.
var ErrNoDevice = errors.New("no device codename")

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
