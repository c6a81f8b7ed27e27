package errors

import (
	"regexp"
	"unicode"
)

// colourNameRegex matches palette colour names: a lowercase letter followed
// by lowercase letters, digits or hyphens.
var colourNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateColourName validates a palette colour name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Lowercase letters, digits and hyphens only, starting with a letter
//   - Maximum length of 64 characters
func ValidateColourName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidColour, "colour name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidColour, "colour name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColour, "colour name contains invalid control characters")
		}
	}

	if !colourNameRegex.MatchString(name) {
		return New(ErrCodeInvalidColour, "invalid colour name: %q", name)
	}

	return nil
}
