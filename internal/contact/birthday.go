package contact

import (
	"fmt"
	"time"
)

// BirthdayLayout is the only accepted textual birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Birthday is a calendar date without a time of day.
type Birthday struct {
	year  int
	month time.Month
	day   int
}

// ParseBirthday parses s strictly as DD.MM.YYYY.
// Impossible dates such as 31.02.2000 and year 0000 are rejected.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil || t.Year() < 1 {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthdayFormat, s)
	}
	return Birthday{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// NewBirthday builds a Birthday from its parts.
// It fails if the parts do not name a real calendar date.
func NewBirthday(year int, month time.Month, day int) (Birthday, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if year < 1 || t.Year() != year || t.Month() != month || t.Day() != day {
		return Birthday{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidBirthdayFormat, year, month, day)
	}
	return Birthday{year: year, month: month, day: day}, nil
}

// Year returns the birth year.
func (b Birthday) Year() int { return b.year }

// Month returns the birth month.
func (b Birthday) Month() time.Month { return b.month }

// Day returns the day of the month.
func (b Birthday) Day() int { return b.day }

// Time returns the birthday as midnight UTC.
func (b Birthday) Time() time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether b was never set.
func (b Birthday) IsZero() bool {
	return b.year == 0 && b.month == 0 && b.day == 0
}

// String renders the birthday in BirthdayLayout.
func (b Birthday) String() string {
	return b.Time().Format(BirthdayLayout)
}

// OccurrenceIn returns the date the birthday is celebrated in year.
// Feb 29 falls back to Feb 28 when year is not a leap year.
func (b Birthday) OccurrenceIn(year int) time.Time {
	day := b.day
	if b.month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, b.month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
