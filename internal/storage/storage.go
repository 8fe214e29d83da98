// Package storage defines the Storage interface: the contract an address
// book must satisfy to be used by the driver.
//
// WHY AN INTERFACE?
// ─────────────────
// The driver should not know or care how records are kept. By depending
// only on this interface:
//
//   - Replacing the backend = implement the interface, change one line in
//     main.go. Zero command changes.
//
//   - Writing tests = pass any value that satisfies the interface.
//
// The in-memory implementation lives in storage/memory.
package storage

import (
	"iter"

	"github.com/aanand-mishra/address-book/internal/record"
)

// Storage is the address book contract.
// Names are unique: a Storage never holds two records with the same name.
type Storage interface {
	// AddRecord stores rec under its name. Returns types.ErrDuplicateRecord
	// if that name is already taken; the stored record is left untouched.
	AddRecord(rec *record.Record) error

	// Find returns the record stored under name. A missing name is not an
	// error: the second result is false.
	Find(name string) (*record.Record, bool)

	// Delete removes the record stored under name.
	// Returns types.ErrRecordNotFound if there is none.
	Delete(name string) error

	// All yields (name, record) pairs in insertion order. Each call starts a
	// fresh pass over the current contents.
	All() iter.Seq2[string, *record.Record]

	// Len returns the number of records.
	Len() int
}
