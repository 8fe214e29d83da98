// Package memory provides an in-memory implementation of the
// storage.Storage interface.
//
// HOW RECORDS ARE KEPT
// ────────────────────
// A Go map gives O(1) lookup by name but iterates in random order. The
// address book must list contacts in the order they were added, so the
// map is paired with a slice of names:
//
//	records  map[string]*record.Record   — lookup by name
//	order    []string                    — insertion order
//
// Every mutation updates both, so they always hold the same set of names.
package memory

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/aanand-mishra/address-book/internal/record"
	"github.com/aanand-mishra/address-book/internal/storage"
	"github.com/aanand-mishra/address-book/internal/types"
)

var _ storage.Storage = (*AddressBook)(nil)

// AddressBook is the in-memory storage.Storage.
// The zero value is not usable; call New.
//
// An AddressBook is not safe for concurrent use. A host that shares one
// between goroutines must guard every call with a single lock.
type AddressBook struct {
	records map[string]*record.Record
	order   []string
}

// New returns an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*record.Record)}
}

// ─────────────────────────────────────────────────────────────────────────────
// AddRecord stores rec under rec.Name().
//
// An existing record is never overwritten. The caller gets
// ErrDuplicateRecord and the stored record keeps its phones.
// ─────────────────────────────────────────────────────────────────────────────
func (b *AddressBook) AddRecord(rec *record.Record) error {
	if rec == nil {
		return fmt.Errorf("AddRecord: %w", types.ErrNilRecord)
	}

	name := rec.Name().Value()
	if _, ok := b.records[name]; ok {
		return fmt.Errorf("AddRecord: %q: %w", name, types.ErrDuplicateRecord)
	}

	b.records[name] = rec
	b.order = append(b.order, name)
	return nil
}

// Find returns the record stored under name, or false.
func (b *AddressBook) Find(name string) (*record.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("Delete: %q: %w", name, types.ErrRecordNotFound)
	}

	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// All returns a lazy iterator over (name, record) pairs in insertion order.
//
// Nothing is read when All is called. Each range loop takes the name order
// as it is when the loop starts, so a second loop after a Delete no longer
// sees the deleted name. A record deleted while a loop is running is
// skipped; one added while a loop is running shows up in the next loop.
//
//	for name, rec := range book.All() {
//		fmt.Println(name, rec)
//	}
// ─────────────────────────────────────────────────────────────────────────────
func (b *AddressBook) All() iter.Seq2[string, *record.Record] {
	return func(yield func(string, *record.Record) bool) {
		for _, name := range slices.Clone(b.order) {
			rec, ok := b.records[name]
			if !ok {
				continue
			}
			if !yield(name, rec) {
				return
			}
		}
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Names returns the stored names in insertion order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.order)
}

// String renders every record on its own line, in insertion order.
func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, rec := range b.All() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}
