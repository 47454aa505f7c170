package book

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/guilhermegouw/phonebook/internal/contact"
)

// DefaultWindowDays is the default look-ahead for UpcomingBirthdays.
const DefaultWindowDays = 7

// WindowMode selects how UpcomingBirthdays decides whether a birthday is inside
// the window.
type WindowMode string

// Window modes.
const (
	// WindowCalendar counts real days to the next occurrence, so windows
	// crossing a month or year boundary work.
	WindowCalendar WindowMode = "calendar"

	// WindowTuple compares (day, month) pairs lexicographically against
	// today's and the window end's pairs. Windows that cross a month boundary
	// give wrong answers; kept for compatibility with the legacy behavior.
	WindowTuple WindowMode = "tuple"
)

// ParseWindowMode converts s into a WindowMode. Empty means WindowCalendar.
func ParseWindowMode(s string) (WindowMode, error) {
	switch WindowMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", WindowCalendar:
		return WindowCalendar, nil
	case WindowTuple:
		return WindowTuple, nil
	default:
		return "", fmt.Errorf("unknown window mode %q (want %q or %q)", s, WindowCalendar, WindowTuple)
	}
}

// Upcoming is one entry of an UpcomingBirthdays result.
type Upcoming struct {
	Record *contact.Record
	// Days until the next occurrence of the birthday, 0 for today.
	Days int
}

// UpcomingBirthdays returns the records whose birthday falls within
// windowDays of now, inclusive at both ends. Results are ordered by days
// until the birthday, then by name.
func (ab *AddressBook) UpcomingBirthdays(now time.Time, windowDays int, mode WindowMode) []Upcoming {
	if windowDays < 0 {
		return nil
	}

	ab.mu.RLock()
	defer ab.mu.RUnlock()

	end := now.AddDate(0, 0, windowDays)
	var out []Upcoming
	for _, r := range ab.sorted() {
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		days, _ := r.DaysToBirthday(now)

		var inside bool
		switch mode {
		case WindowTuple:
			inside = inTupleWindow(b, now, end)
		default:
			inside = days <= windowDays
		}
		if inside {
			out = append(out, Upcoming{Record: r, Days: days})
		}
	}

	slices.SortStableFunc(out, func(a, b Upcoming) int {
		return a.Days - b.Days
	})
	return out
}

// inTupleWindow reports whether start <= (day, month) of b <= end, comparing
// day first and month second.
func inTupleWindow(b contact.Birthday, start, end time.Time) bool {
	bd := [2]int{b.Day(), int(b.Month())}
	from := [2]int{start.Day(), int(start.Month())}
	to := [2]int{end.Day(), int(end.Month())}
	return compareTuple(bd, from) >= 0 && compareTuple(bd, to) <= 0
}

func compareTuple(a, b [2]int) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}
	return a[1] - b[1]
}
