// Package types holds the small value types shared across the address
// book: the contact Name, the validated Phone, and the error kinds every
// other package returns. Keeping them in one place prevents import cycles.
// record, storage and the driver can all import types without depending
// on each other.
package types

import "github.com/go-playground/validator/v10"

// validate is shared by every call to ValidatePhone; it caches parsed tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// phoneRules is the go-playground/validator tag applied to raw phone input.
//
//	len=10  — exactly 10 characters (counted as runes)
//	number  — only ASCII digits 0-9, no sign, no separators
//
// "number" rejects Unicode digits such as "١", so the rune count and the
// byte count always agree for a value that passes both rules.
const phoneRules = "len=10,number"

// Field is the capability shared by Name and Phone: both are plain string
// values that know how to print themselves.
type Field interface {
	Value() string
	String() string
}

var (
	_ Field = Name{}
	_ Field = Phone{}
)

// Name identifies one contact. Uniqueness is enforced by the address book,
// not here.
type Name struct {
	value string
}

// NewName wraps s as a Name. Any string is accepted.
func NewName(s string) Name {
	return Name{value: s}
}

// Value returns the raw name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

// ─────────────────────────────────────────────────────────────────────────────
// Phone is a phone number that has passed ValidatePhone.
//
// The field is unexported, so code outside this package can only obtain a
// non-zero Phone through NewPhone. That keeps the invariant "no Phone holds
// an invalid value" true everywhere in the program.
// ─────────────────────────────────────────────────────────────────────────────
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone, unchanged.
// It returns ErrInvalidPhone when raw is not exactly 10 digits.
func NewPhone(raw string) (Phone, error) {
	if err := ValidatePhone(raw); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

// Value returns the 10-digit string.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

// ValidatePhone reports whether raw is exactly 10 ASCII digits.
//
// Nothing is stripped or normalised: "123-456-7890", " 1234567890" and
// "1234567890\n" are all rejected. The returned error is always
// ErrInvalidPhone, so callers can branch with errors.Is.
func ValidatePhone(raw string) error {
	if err := validate.Var(raw, phoneRules); err != nil {
		return ErrInvalidPhone
	}
	return nil
}
