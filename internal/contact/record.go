package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhoneSeparator joins phone numbers when a record is rendered.
const PhoneSeparator = "; "

// Record holds everything known about one contact.
//
// The name is fixed at creation. Phones keep insertion order and may contain
// duplicates. A Record is not safe for concurrent use; the address book that
// owns it serializes access.
type Record struct {
	id        string
	name      string
	phones    []Phone
	birthday  Birthday
	hasBday   bool
	createdAt time.Time
	updatedAt time.Time
}

// NewRecord creates a Record with no phones and no birthday.
// Surrounding whitespace is trimmed from the name.
func NewRecord(name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	now := time.Now()
	return &Record{
		id:        uuid.New().String(),
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ID returns the record's generated UUID.
func (r *Record) ID() string { return r.id }

// Name returns the contact name.
func (r *Record) Name() string { return r.name }

// CreatedAt returns when the record was created.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the record was last modified.
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates number and appends it.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	r.touch()
	return nil
}

// RemovePhone drops every phone equal to number. Missing numbers are ignored.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(r.phones) {
		return
	}
	clear(r.phones[len(kept):])
	r.phones = kept
	r.touch()
}

// EditPhone replaces the first phone equal to oldNumber with newNumber.
// newNumber must be valid; the record is left unchanged otherwise.
// It is a no-op when oldNumber is not present.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	i := r.indexOf(oldNumber)
	if i < 0 {
		return nil
	}
	p, err := NewPhone(newNumber)
	if err != nil {
		return err
	}
	r.phones[i] = p
	r.touch()
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	i := r.indexOf(number)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// SetBirthday sets or overwrites the birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = b
	r.hasBday = true
	r.touch()
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, r.hasBday
}

// DaysToBirthday returns the number of days from now's date to the next
// occurrence of the birthday, 0 when it is today. The second result is false
// when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if !r.hasBday {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := r.birthday.OccurrenceIn(today.Year())
	if next.Before(today) {
		next = r.birthday.OccurrenceIn(today.Year() + 1)
	}
	return int(next.Sub(today).Hours() / 24), true
}

// String renders the record for display.
func (r *Record) String() string {
	numbers := make([]string, len(r.phones))
	for i, p := range r.phones {
		numbers[i] = p.value
	}
	bday := "-"
	if r.hasBday {
		bday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(numbers, PhoneSeparator), bday)
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.value == number {
			return i
		}
	}
	return -1
}

func (r *Record) touch() {
	r.updatedAt = time.Now()
}
