package errors

import (
	"strings"
	"testing"
)

func TestValidateColourName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "black", false},
		{"valid with dash", "dark-slate", false},
		{"valid with digits", "grey50", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"uppercase", "Black", true},
		{"leading digit", "1black", true},
		{"leading dash", "-black", true},
		{"underscore", "dark_slate", true},
		{"spaces", "dark slate", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColourName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColourName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColour) {
				t.Errorf("ValidateColourName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColour)
			}
		})
	}
}
