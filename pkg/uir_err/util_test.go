// pkg/uir_err/util_test.go

package uir_err

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExpectedError(t *testing.T) {
	assert.Nil(t, NewExpectedError(nil))

	base := errors.New("no token entered")
	err := NewExpectedError(base)
	assert.True(t, IsExpectedUserError(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "no token entered", err.Error())

	wrapped := fmt.Errorf("token dialog: %w", err)
	assert.True(t, IsExpectedUserError(wrapped))
	assert.False(t, IsExpectedUserError(base))
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "expected user error", err: NewExpectedError(errors.New("declined")), want: 0},
		{name: "validation", err: NewValidationError("bad result", nil), want: 2},
		{name: "network", err: NewNetworkError("backend down", errors.New("dial tcp")), want: 1},
		{name: "user cancel", err: NewInterruptedError(errors.New("context canceled")), want: 130},
		{name: "wrapped validation", err: fmt.Errorf("flags: %w", NewValidationError("bad", nil)), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestClassifiedErrorMessage(t *testing.T) {
	err := NewValidationError("invalid result", errors.New("got MAYBE"), "use PASS, WONKY or FAIL")
	assert.Contains(t, err.Error(), "invalid result: got MAYBE")
	assert.Contains(t, err.Error(), "1. use PASS, WONKY or FAIL")
}

func TestIsNetworkError(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewNetworkError("backend down", errors.New("dial tcp")))
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsNetworkError(NewValidationError("bad flag", nil)))
	assert.False(t, IsNetworkError(errors.New("plain")))
}
