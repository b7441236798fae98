package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every validator rejection.
var ErrInvalidInput = errors.New("invalid input")

// None is the choice that MatchChoice normalizes to the empty result.
const None = "none"

// Validator turns a raw answer into a value or rejects it. The error message
// is shown to the user before the question is asked again.
type Validator[T any] func(input string) (T, error)

var (
	trueWords  = []string{"y", "yes", "1", "on", "true", "t"}
	falseWords = []string{"n", "no", "0", "off", "false", "f"}
)

// NonEmpty accepts any answer with non-whitespace content, trimmed.
func NonEmpty(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: a value is required", ErrInvalidInput)
	}
	return s, nil
}

// ParseBool accepts y/yes/1/on/true/t and n/no/0/off/false/f, ignoring case.
func ParseBool(input string) (bool, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, w := range trueWords {
		if s == w {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if s == w {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: answer yes or no, got %q", ErrInvalidInput, input)
}

// MatchChoice returns the choice matching input case-insensitively. A match
// on "none" yields "", the absent result.
func MatchChoice(input string, choices []string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, c := range choices {
		if s == strings.ToLower(c) {
			if s == None {
				return "", nil
			}
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: choose one of %s, got %q", ErrInvalidInput, strings.Join(choices, ", "), input)
}
