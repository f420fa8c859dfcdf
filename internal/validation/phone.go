package validation

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrMissingPhone = errors.New("phone number is required")
	ErrPhoneFormat  = errors.New("phone number must be in E.164 format starting with +")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// NormalizePhone returns num in E.164 form.
func NormalizePhone(num string) (string, error) {
	num = strings.TrimSpace(num)
	if num == "" {
		return "", ErrMissingPhone
	}

	if num[0] != '+' {
		return "", ErrPhoneFormat
	}

	parsed, err := phonenumbers.Parse(num, "")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
