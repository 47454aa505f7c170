// Package contact provides the contact record and its validated fields.
//
// A Record owns a name, an ordered list of phone numbers and an optional
// birthday. Phone numbers and birthdays are value types that can only be
// obtained through their checked constructors, so a Record never holds an
// unvalidated field.
//
// Example usage:
//
//	rec, err := contact.NewRecord("Ann")
//	if err != nil {
//	    return err
//	}
//	if err := rec.AddPhone("0501234567"); err != nil {
//	    return err // wraps contact.ErrInvalidPhone
//	}
package contact

import "errors"

// Validation errors for contact fields.
var (
	// ErrInvalidPhone is returned when a phone number is not exactly 10 decimal digits.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidBirthdayFormat is returned when a birthday is not a real DD.MM.YYYY date.
	ErrInvalidBirthdayFormat = errors.New("invalid birthday format, use DD.MM.YYYY")

	// ErrInvalidName is returned when a contact name is empty or whitespace-only.
	ErrInvalidName = errors.New("contact name cannot be empty")
)
