// pkg/interaction/validate.go

package interaction

import (
	"errors"
	"strings"
)

// ValidateNonEmpty ensures the input is not empty.
func ValidateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// ValidateOption ensures input is one of options, case-insensitively, and
// returns the canonical spelling.
func ValidateOption(input string, options []string) (string, error) {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(input), o) {
			return o, nil
		}
	}
	return "", errors.New("choose one of: " + strings.Join(options, ", "))
}

// NormalizeYesNoInput reports whether input is affirmative and whether it
// was recognised at all.
func NormalizeYesNoInput(input string) (bool, bool) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == YesShort || input == YesLong {
		return true, true
	}
	if input == NoShort || input == NoLong {
		return false, true
	}
	return false, false // unknown
}

const (
	YesShort = "y"
	YesLong  = "yes"
	NoShort  = "n"
	NoLong   = "no"
)
