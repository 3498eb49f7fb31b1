package service

import (
	"regexp"
	"strings"

	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
	"github.com/Lucasteinmann/Aarebooking/shared/phone"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks the customer fields in a fixed order and returns the
// phone number normalized to E.164. The first failing check wins: email
// format, confirmation match, phone number, then name and address presence.
// The confirmation comparison is exact, including letter case.
func ValidateContact(contact dto.ContactDetails) (string, error) {
	if !emailPattern.MatchString(contact.Email) {
		return "", failure.Validation("email address is not valid") // nolint:wrapcheck
	}

	if contact.Email != contact.EmailConfirmation {
		return "", failure.Validation("email addresses do not match") // nolint:wrapcheck
	}

	normalized, err := phone.NormalizeE164(contact.Phone)
	if err != nil {
		return "", failure.Validation("phone number is not valid") // nolint:wrapcheck
	}

	if strings.TrimSpace(contact.Name) == "" {
		return "", failure.Validation("name is required") // nolint:wrapcheck
	}

	if strings.TrimSpace(contact.Address) == "" {
		return "", failure.Validation("address is required") // nolint:wrapcheck
	}

	return normalized, nil
}
