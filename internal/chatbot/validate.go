package chatbot

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 500

var (
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = errors.New("message too long, please keep it under 500 characters")
	ErrInvalidContent = errors.New("invalid message content")
)

var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)script`),
	regexp.MustCompile(`(?i)javascript`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)onclick`),
	regexp.MustCompile(`(?i)onerror`),
	regexp.MustCompile(`<[^>]*>`),
}

// ValidateMessage trims raw and rejects empty, oversized or script-like input.
func ValidateMessage(raw string) (string, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	for _, p := range blockedPatterns {
		if p.MatchString(msg) {
			return "", ErrInvalidContent
		}
	}
	return msg, nil
}
