// Package record implements a single contact: a name plus an ordered list
// of validated, unique phone numbers.
//
// ERROR POLICY
// ────────────
// Every method returns its failure to the caller instead of logging it.
// The caller (usually the driver) decides whether to log, retry or abort.
//
//   - invalid phone          → types.ErrInvalidPhone   (kind ErrValidation)
//   - phone already present  → types.ErrDuplicatePhone (kind ErrDuplicate)
//   - phone not present      → types.ErrPhoneNotFound  (kind ErrNotFound)
//
// A failed call never changes the phone list.
package record

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aanand-mishra/address-book/internal/types"
)

// Record is one contact. The name is fixed at construction; phones keep the
// order they were added in.
//
// A Record is not safe for concurrent use.
type Record struct {
	name   types.Name
	phones []types.Phone
}

// New returns an empty Record for name.
func New(name string) *Record {
	return &Record{name: types.NewName(name)}
}

// Name returns the contact name.
func (r *Record) Name() types.Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
// Mutating the returned slice does not affect the Record.
func (r *Record) Phones() []types.Phone {
	return slices.Clone(r.phones)
}

// Len returns the number of phones.
func (r *Record) Len() int {
	return len(r.phones)
}

// ─────────────────────────────────────────────────────────────────────────────
// AddPhone validates raw and appends it to the end of the list.
//
// Order of checks:
//  1. format  — raw must be exactly 10 digits
//  2. unique  — raw must not already be in this record
// ─────────────────────────────────────────────────────────────────────────────
func (r *Record) AddPhone(raw string) error {
	phone, err := types.NewPhone(raw)
	if err != nil {
		return fmt.Errorf("AddPhone: %w", err)
	}

	if r.indexOf(raw) >= 0 {
		return fmt.Errorf("AddPhone: %w", types.ErrDuplicatePhone)
	}

	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone returns the first phone equal to value.
// A miss is not an error: the second result is simply false.
func (r *Record) FindPhone(value string) (types.Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return types.Phone{}, false
	}
	return r.phones[i], true
}

// HasPhone reports whether value is one of the record's phones.
func (r *Record) HasPhone(value string) bool {
	return r.indexOf(value) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// EditPhone replaces oldValue with newValue at the same position.
//
// Order of checks:
//  1. oldValue must be present         → ErrPhoneNotFound
//  2. newValue must be 10 digits       → ErrInvalidPhone
//  3. newValue must not be at any
//     OTHER position in the list       → ErrDuplicatePhone
//
// Editing a phone to its own value passes every check and leaves the list
// as it was.
// ─────────────────────────────────────────────────────────────────────────────
func (r *Record) EditPhone(oldValue, newValue string) error {
	i := r.indexOf(oldValue)
	if i < 0 {
		return fmt.Errorf("EditPhone: %q: %w", oldValue, types.ErrPhoneNotFound)
	}

	phone, err := types.NewPhone(newValue)
	if err != nil {
		return fmt.Errorf("EditPhone: %w", err)
	}

	if j := r.indexOf(newValue); j >= 0 && j != i {
		return fmt.Errorf("EditPhone: %w", types.ErrDuplicatePhone)
	}

	r.phones[i] = phone
	return nil
}

// RemovePhone deletes the entry equal to value.
// Removing a phone the record does not hold fails with ErrPhoneNotFound.
func (r *Record) RemovePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return fmt.Errorf("RemovePhone: %q: %w", value, types.ErrPhoneNotFound)
	}

	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// String renders the record for display, e.g.
//
//	Contact name: John, phones: 1234567890; 5555555555
//
// The format is for people, not for parsing.
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(values, "; "))
}

// indexOf is a linear scan; records hold a handful of phones.
func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p types.Phone) bool {
		return p.Value() == value
	})
}
