// Package book provides the in-memory address book keyed by contact name.
package book

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/guilhermegouw/phonebook/internal/contact"
	"github.com/guilhermegouw/phonebook/internal/debug"
	"github.com/guilhermegouw/phonebook/internal/events"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
)

var (
	// ErrNotFound is returned when a name has no record in the book.
	ErrNotFound = errors.New("contact not found")

	// ErrInvalidRecord is returned by AddRecord for a nil record or one
	// without a name. Build records with contact.NewRecord.
	ErrInvalidRecord = errors.New("invalid record")
)

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithBroker publishes a ContactEvent to b for every change to the book.
func WithBroker(b pubsub.Publisher[events.ContactEvent]) Option {
	return func(ab *AddressBook) {
		ab.broker = b
	}
}

// AddressBook maps contact names to records.
//
// Each record's name always equals its key. Every method holds the book's
// lock for its whole duration, including changes made to a record through
// the book.
type AddressBook struct {
	records map[string]*contact.Record
	broker  pubsub.Publisher[events.ContactEvent]
	mu      sync.RWMutex
}

// New creates an empty AddressBook.
func New(opts ...Option) *AddressBook {
	ab := &AddressBook{
		records: make(map[string]*contact.Record),
	}
	for _, opt := range opts {
		opt(ab)
	}
	return ab
}

// AddRecord stores r under its name. An existing record with the same name is
// replaced and its data is discarded. It reports whether a record was replaced.
func (ab *AddressBook) AddRecord(r *contact.Record) (bool, error) {
	if r == nil {
		return false, ErrInvalidRecord
	}
	if strings.TrimSpace(r.Name()) == "" {
		return false, fmt.Errorf("%w: %w", ErrInvalidRecord, contact.ErrInvalidName)
	}

	ab.mu.Lock()
	defer ab.mu.Unlock()

	_, replaced := ab.records[r.Name()]
	ab.records[r.Name()] = r

	if replaced {
		debug.Event("book", "replace", fmt.Sprintf("name=%s", r.Name()))
		ab.publish(pubsub.EventUpdated, events.NewContactEvent(events.ContactEventReplaced, r.ID(), r.Name()))
	} else {
		debug.Event("book", "add", fmt.Sprintf("name=%s", r.Name()))
		ab.publish(pubsub.EventCreated, events.NewContactEvent(events.ContactEventAdded, r.ID(), r.Name()))
	}
	return replaced, nil
}

// Find returns the record stored under name.
func (ab *AddressBook) Find(name string) (*contact.Record, bool) {
	ab.mu.RLock()
	defer ab.mu.RUnlock()

	r, ok := ab.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (ab *AddressBook) Delete(name string) error {
	ab.mu.Lock()
	defer ab.mu.Unlock()

	r, ok := ab.records[name]
	if !ok {
		return fmt.Errorf("deleting %q: %w", name, ErrNotFound)
	}
	delete(ab.records, name)

	debug.Event("book", "delete", fmt.Sprintf("name=%s", name))
	ab.publish(pubsub.EventDeleted, events.NewContactEvent(events.ContactEventDeleted, r.ID(), name))
	return nil
}

// AddPhone appends a phone to the record stored under name.
func (ab *AddressBook) AddPhone(name, number string) error {
	ab.mu.Lock()
	defer ab.mu.Unlock()

	r, ok := ab.records[name]
	if !ok {
		return fmt.Errorf("adding phone to %q: %w", name, ErrNotFound)
	}
	if err := r.AddPhone(number); err != nil {
		return err
	}

	ab.publish(pubsub.EventUpdated,
		events.NewContactEvent(events.ContactEventPhoneAdded, r.ID(), name).WithDetail(number))
	return nil
}

// RemovePhone removes every copy of number from the record stored under name.
func (ab *AddressBook) RemovePhone(name, number string) error {
	ab.mu.Lock()
	defer ab.mu.Unlock()

	r, ok := ab.records[name]
	if !ok {
		return fmt.Errorf("removing phone from %q: %w", name, ErrNotFound)
	}
	if _, found := r.FindPhone(number); !found {
		return nil
	}
	r.RemovePhone(number)

	ab.publish(pubsub.EventUpdated,
		events.NewContactEvent(events.ContactEventPhoneRemoved, r.ID(), name).WithDetail(number))
	return nil
}

// ChangePhone replaces the first phone of the record stored under name.
// It does nothing when the record is missing or has no phones. An invalid
// newPhone is rejected and leaves the record unchanged.
func (ab *AddressBook) ChangePhone(name, newPhone string) error {
	ab.mu.Lock()
	defer ab.mu.Unlock()

	r, ok := ab.records[name]
	if !ok {
		return nil
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return nil
	}
	if err := r.EditPhone(phones[0].String(), newPhone); err != nil {
		return err
	}

	debug.Event("book", "change_phone", fmt.Sprintf("name=%s", name))
	ab.publish(pubsub.EventUpdated,
		events.NewContactEvent(events.ContactEventPhoneChanged, r.ID(), name).WithDetail(newPhone))
	return nil
}

// SetBirthday sets the birthday of the record stored under name.
func (ab *AddressBook) SetBirthday(name string, b contact.Birthday) error {
	ab.mu.Lock()
	defer ab.mu.Unlock()

	r, ok := ab.records[name]
	if !ok {
		return fmt.Errorf("setting birthday for %q: %w", name, ErrNotFound)
	}
	r.SetBirthday(b)

	ab.publish(pubsub.EventUpdated,
		events.NewContactEvent(events.ContactEventBirthdaySet, r.ID(), name).WithDetail(b.String()))
	return nil
}

// ShowPhone returns the phones of the record stored under name joined by
// contact.PhoneSeparator. The second result is false when name is unknown.
func (ab *AddressBook) ShowPhone(name string) (string, bool) {
	ab.mu.RLock()
	defer ab.mu.RUnlock()

	r, ok := ab.records[name]
	if !ok {
		return "", false
	}
	phones := r.Phones()
	numbers := make([]string, len(phones))
	for i, p := range phones {
		numbers[i] = p.String()
	}
	return strings.Join(numbers, contact.PhoneSeparator), true
}

// Records returns all records ordered by name.
func (ab *AddressBook) Records() []*contact.Record {
	ab.mu.RLock()
	defer ab.mu.RUnlock()

	return ab.sorted()
}

// ListAll renders every record on its own line, ordered by name.
func (ab *AddressBook) ListAll() string {
	records := ab.Records()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of records.
func (ab *AddressBook) Len() int {
	ab.mu.RLock()
	defer ab.mu.RUnlock()
	return len(ab.records)
}

func (ab *AddressBook) sorted() []*contact.Record {
	out := make([]*contact.Record, 0, len(ab.records))
	for _, r := range ab.records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *contact.Record) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

func (ab *AddressBook) publish(typ pubsub.EventType, ev events.ContactEvent) {
	if ab.broker != nil {
		ab.broker.Publish(typ, ev)
	}
}
