package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/address-book/internal/config"
	"github.com/aanand-mishra/address-book/internal/record"
	"github.com/aanand-mishra/address-book/internal/storage"
	"github.com/aanand-mishra/address-book/internal/types"
)

// DemoCmd walks through every address book operation and prints the book
// after each step.
type DemoCmd struct{}

// ─────────────────────────────────────────────────────────────────────────────
// Run executes the demo:
//
//  1. add John (two phones) and Jane (one phone), print the book
//  2. find John, edit a phone, remove a phone, find a phone
//  3. try a 5-digit phone (rejected and logged, book unchanged)
//  4. delete Jane, print the book
//
// Any unexpected failure aborts the demo with the wrapped error.
// ─────────────────────────────────────────────────────────────────────────────
func (c *DemoCmd) Run(a *app) error {
	john := record.New("John")
	if err := addPhones(john, "1234567890", "5555555555"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := a.store.AddRecord(john); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	jane := record.New("Jane")
	if err := addPhones(jane, "9876543210"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := a.store.AddRecord(jane); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	a.log.Debug("records added", slog.Int("count", a.store.Len()))
	a.printAll()

	rec, ok := a.store.Find("John")
	if !ok {
		return fmt.Errorf("demo: %q: %w", "John", types.ErrRecordNotFound)
	}
	fmt.Fprintln(a.out, rec)

	if err := rec.EditPhone("1234567890", "1112223333"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(a.out, rec)

	if err := rec.RemovePhone("1112223333"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(a.out, rec)

	phone, ok := rec.FindPhone("5555555555")
	if !ok {
		return fmt.Errorf("demo: %q: %w", "5555555555", types.ErrPhoneNotFound)
	}
	fmt.Fprintf(a.out, "%s: %s\n", rec.Name(), phone)

	// The record rejects the phone and stays as it was; logging is our call.
	if err := rec.AddPhone("12345"); err != nil {
		a.log.Warn("phone rejected",
			slog.String("name", rec.Name().Value()),
			slog.String("phone", "12345"),
			slog.String("error", err.Error()))
	}

	if err := a.store.Delete("Jane"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	a.log.Debug("record deleted", slog.String("name", "Jane"))
	a.printAll()

	return nil
}

// ListCmd seeds the address book from the config and prints it.
type ListCmd struct{}

// Run adds every configured contact, then prints the book.
func (c *ListCmd) Run(a *app) error {
	if err := seed(a.store, a.cfg.Contacts); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if a.store.Len() == 0 {
		a.log.Info("address book is empty")
		return nil
	}

	a.log.Info("address book loaded", slog.Int("count", a.store.Len()))
	a.printAll()
	return nil
}

// seed builds one record per contact and adds it to store.
// It stops at the first contact that the address book rejects.
func seed(store storage.Storage, contacts []config.Contact) error {
	for _, c := range contacts {
		rec := record.New(c.Name)
		if err := addPhones(rec, c.Phones...); err != nil {
			return fmt.Errorf("contact %q: %w", c.Name, err)
		}
		if err := store.AddRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// addPhones adds each phone in order and reports every rejected one.
func addPhones(rec *record.Record, phones ...string) error {
	var errs []error
	for _, p := range phones {
		if err := rec.AddPhone(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}
