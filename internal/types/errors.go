package types

import "errors"

// Error kinds. Every error returned by the address book unwraps to exactly
// one of these, so a caller can branch on the kind without knowing which
// operation failed:
//
//	if errors.Is(err, types.ErrDuplicate) { ... }
var (
	// ErrValidation is the kind for input that fails a format rule.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate is the kind for a value that is already stored.
	ErrDuplicate = errors.New("already exists")

	// ErrNotFound is the kind for a value that is not stored.
	ErrNotFound = errors.New("not found")
)

// Specific errors. Each one compares equal to itself with errors.Is and also
// matches its kind.
var (
	// ErrInvalidPhone is returned when a phone is not exactly 10 digits.
	ErrInvalidPhone = &Error{kind: ErrValidation, msg: "Phone should contain 10 numbers."}

	// ErrDuplicatePhone is returned when a record already holds the phone.
	ErrDuplicatePhone = &Error{kind: ErrDuplicate, msg: "The phone number already exists"}

	// ErrPhoneNotFound is returned by edit and remove for an unknown phone.
	ErrPhoneNotFound = &Error{kind: ErrNotFound, msg: "phone number not found"}

	// ErrDuplicateRecord is returned when a record with the same name is
	// already in the address book.
	ErrDuplicateRecord = &Error{kind: ErrDuplicate, msg: "record already exists"}

	// ErrRecordNotFound is returned when deleting an unknown name.
	ErrRecordNotFound = &Error{kind: ErrNotFound, msg: "record not found"}

	// ErrNilRecord is returned when a nil record is added.
	ErrNilRecord = &Error{kind: ErrValidation, msg: "record is nil"}
)

// Error is a fixed, human-readable message tagged with an error kind.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.kind }
