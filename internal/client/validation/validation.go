// Package validation holds the form rules of the storefront: registration
// and the checkout delivery form. Rules are checked in a fixed order and the
// first failure wins.
package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ynitaziki/storefront/internal/client/models"
)

// ErrValidation is wrapped by every FieldError.
var ErrValidation = errors.New("validation error")

const (
	MinPasswordLength = 6
	MinPhoneDigits    = 10
	MaxPhoneDigits    = 15
	MinRegionLength   = 3
	MinCityLength     = 2
	MinAddressLength  = 5
)

const (
	MsgFillAllFields    = "Fill in all fields."
	MsgPasswordTooShort = "Password must be at least 6 characters."
	MsgPasswordMismatch = "Passwords do not match."

	MsgFullName = "Enter your first and last name."
	MsgPhone    = "Phone number must contain 10 to 15 digits."
	MsgRegion   = "Region must be at least 3 characters."
	MsgCity     = "City must be at least 2 characters."
	MsgAddress  = "Address must be at least 5 characters."
)

// FieldError names the field that failed and carries the message shown next
// to the form.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fail(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}

// ValidateRegistration checks the registration form. Username and email are
// trimmed; the password is taken as typed.
func ValidateRegistration(username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return fail("form", MsgFillAllFields)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fail("password", MsgPasswordTooShort)
	}
	if password != confirm {
		return fail("confirm", MsgPasswordMismatch)
	}
	return nil
}

// ValidateDelivery checks the delivery form of the checkout.
func ValidateDelivery(f models.DeliveryForm) error {
	if len(strings.Fields(f.FullName)) < 2 {
		return fail("full_name", MsgFullName)
	}
	if n := countDigits(f.Phone); n < MinPhoneDigits || n > MaxPhoneDigits {
		return fail("phone", MsgPhone)
	}
	if trimmedLen(f.Region) < MinRegionLength {
		return fail("region", MsgRegion)
	}
	if trimmedLen(f.City) < MinCityLength {
		return fail("city", MsgCity)
	}
	if trimmedLen(f.Address) < MinAddressLength {
		return fail("address", MsgAddress)
	}
	return nil
}

// Message returns the user-facing text of a validation failure, or "" for
// nil and for errors that are not validation failures.
func Message(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// trimmedLen counts characters, not bytes, so Cyrillic input is measured
// the way the user sees it.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimFunc(s, unicode.IsSpace))
}
