package phone_test

import (
	"testing"

	"github.com/Lucasteinmann/Aarebooking/shared/phone"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		expectError bool
	}{
		{
			name:  "swiss number already normalized",
			input: "+41791234567",
			want:  "+41791234567",
		},
		{
			name:  "swiss number with spaces",
			input: "+41 79 123 45 67",
			want:  "+41791234567",
		},
		{
			name:  "german number with separators",
			input: "+49 (0) 151 2345-6789",
			want:  "+4915123456789",
		},
		{
			name:        "missing country code",
			input:       "079 123 45 67",
			expectError: true,
		},
		{
			name:        "garbage",
			input:       "not-a-number",
			expectError: true,
		},
		{
			name:        "too short to be valid",
			input:       "+4179",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "whitespace only",
			input:       "   ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.NormalizeE164(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !phone.IsValid("+41791234567") {
		t.Error("expected +41791234567 to be valid")
	}
	if phone.IsValid("12345") {
		t.Error("expected 12345 to be invalid")
	}
}
