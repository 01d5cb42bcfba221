package feed

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxTweetLength is counted in Unicode code points after trimming.
	MaxTweetLength = 280
	// MaxUsernameLength matches the users.username column size.
	MaxUsernameLength = 255
)

// ValidateTweetContent returns the trimmed content, which is what gets
// stored. An empty check wins over the length check.
func ValidateTweetContent(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(trimmed) > MaxTweetLength {
		return "", ErrContentTooLong
	}
	return trimmed, nil
}

func ValidateUsername(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyUsername
	}
	if utf8.RuneCountInString(trimmed) > MaxUsernameLength {
		return "", ErrUsernameTooLong
	}
	return trimmed, nil
}
