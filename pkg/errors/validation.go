package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxElementIDLength = 128
	maxTextLength      = 10000
)

// ValidateElementID validates a content element identifier.
// IDs travel into cache keys, DOT output and JSON, so they are kept to a
// conservative alphabet:
//   - No empty IDs
//   - No control characters or whitespace
//   - No quotes or backslashes
//   - Maximum length of 128 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElement, "element id cannot be empty")
	}

	if len(id) > maxElementIDLength {
		return New(ErrCodeInvalidElement, "element id too long (max %d characters)", maxElementIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidElement, "element id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, "\"'\\") {
		return New(ErrCodeInvalidElement, "element id %q contains quotes or backslashes", id)
	}

	return nil
}

// ValidateText validates free text supplied for a content element.
// Newlines and tabs are allowed; other control characters are not.
func ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidElement, "text is not valid UTF-8")
	}

	if utf8.RuneCountInString(text) > maxTextLength {
		return New(ErrCodeInvalidElement, "text too long (max %d characters)", maxTextLength)
	}

	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidElement, "text contains invalid control characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
