package contact

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 10

// phoneTag checks an exact length of ASCII digits only.
var phoneTag = fmt.Sprintf("len=%d,number", PhoneLength)

var validate = validator.New()

// Phone is a validated phone number. The zero value is not a valid phone.
type Phone struct {
	value string
}

// ValidatePhone reports whether s is exactly PhoneLength decimal digits.
// Separators, spaces and a leading plus are rejected, not stripped.
func ValidatePhone(s string) bool {
	return validate.Var(s, phoneTag) == nil
}

// NewPhone returns a Phone for s or an error wrapping ErrInvalidPhone.
func NewPhone(s string) (Phone, error) {
	if !ValidatePhone(s) {
		return Phone{}, fmt.Errorf("%w: %q must be %d digits", ErrInvalidPhone, s, PhoneLength)
	}
	return Phone{value: s}, nil
}

// String returns the digits as given to NewPhone.
func (p Phone) String() string {
	return p.value
}

// IsZero reports whether p was never set.
func (p Phone) IsZero() bool {
	return p.value == ""
}
