package validator_test

import (
	"strings"
	"testing"

	"github.com/Lucasteinmann/Aarebooking/shared/validator"
)

type contactTestStruct struct {
	Name  string `validate:"required"       json:"name"`
	Email string `validate:"required,email" json:"email"`
	Phone string `validate:"required,phone" json:"phone"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *contactTestStruct
		expectError bool
	}{
		{
			name: "valid contact",
			data: &contactTestStruct{
				Name:  "John Aareboots",
				Email: "john@example.com",
				Phone: "+41791234567",
			},
			expectError: false,
		},
		{
			name: "missing name",
			data: &contactTestStruct{
				Email: "john@example.com",
				Phone: "+41791234567",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &contactTestStruct{
				Name:  "John Aareboots",
				Email: "not-an-email",
				Phone: "+41791234567",
			},
			expectError: true,
		},
		{
			name: "phone without country code",
			data: &contactTestStruct{
				Name:  "John Aareboots",
				Email: "john@example.com",
				Phone: "079 123 45 67",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"name":"John","email":"john@example.com","phone":"+41791234567"}`)

	data := contactTestStruct{}
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Name != "John" {
		t.Errorf("expected decoded name John, got %s", data.Name)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	data := contactTestStruct{}
	if err := validator.Validate(body, &data); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("+41791234567", "phone"); err != nil {
		t.Errorf("expected valid phone, got %v", err)
	}
	if err := validator.ValidateVar("nope", "phone"); err == nil {
		t.Error("expected error for invalid phone")
	}
}
