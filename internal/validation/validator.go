package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	wholeNumberRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		wholeNumberRegex: regexp.MustCompile(`^[+-]?\d+$`),
	}
}

// IsNonEmptyString checks if a string has at least one character.
// Whitespace counts: the task list keys on the exact text the user typed.
func (v *Validator) IsNonEmptyString(s string) bool {
	return s != ""
}

// IsPositive checks if a count is strictly greater than zero
func (v *Validator) IsPositive(n int) bool {
	return n > 0
}

// ParseWholeNumber converts numeric input text to an int.
// Surrounding whitespace is ignored; anything that is not a whole number
// reports false.
func (v *Validator) ParseWholeNumber(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if !v.wholeNumberRegex.MatchString(trimmed) {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
