// Package phone validates customer phone numbers and normalizes them to
// E.164 ("+<countrycode><nationalnumber>", no separators) for storage.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrEmptyNumber   = errors.New("phone number is empty")
	ErrInvalidNumber = errors.New("phone number is not valid")
)

// NormalizeE164 parses a user-typed phone number and returns its E.164
// representation. The country code must be carried by the number itself
// (leading "+"); numbers without one are rejected rather than guessed.
func NormalizeE164(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyNumber
	}

	parsed, err := phonenumbers.Parse(trimmed, "")
	if err != nil {
		return "", ErrInvalidNumber
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidNumber
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether the raw input parses as a valid phone number.
func IsValid(raw string) bool {
	_, err := NormalizeE164(raw)

	return err == nil
}
