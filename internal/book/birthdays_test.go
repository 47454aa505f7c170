package book

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/guilhermegouw/phonebook/internal/contact"
)

type upcomingEntry struct {
	Name string
	Days int
}

func summarize(ups []Upcoming) []upcomingEntry {
	out := make([]upcomingEntry, len(ups))
	for i, u := range ups {
		out[i] = upcomingEntry{Name: u.Record.Name(), Days: u.Days}
	}
	return out
}

func bookWithBirthdays(t *testing.T, birthdays map[string]string) *AddressBook {
	t.Helper()
	ab := New()
	for name, bday := range birthdays {
		r := newRecord(t, name)
		if bday != "" {
			b, err := contact.ParseBirthday(bday)
			if err != nil {
				t.Fatalf("ParseBirthday(%q): %v", bday, err)
			}
			r.SetBirthday(b)
		}
		ab.AddRecord(r)
	}
	return ab
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestParseWindowMode(t *testing.T) {
	tests := []struct {
		input   string
		want    WindowMode
		wantErr bool
	}{
		{input: "", want: WindowCalendar},
		{input: "calendar", want: WindowCalendar},
		{input: " Tuple ", want: WindowTuple},
		{input: "weekly", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseWindowMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseWindowMode(%q) expected error", tc.input)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseWindowMode(%q) = (%q, %v), want %q", tc.input, got, err, tc.want)
			}
		})
	}
}

func TestUpcomingBirthdaysCalendar(t *testing.T) {
	ab := bookWithBirthdays(t, map[string]string{
		"Ann":   "10.03.1990", // today
		"Bob":   "17.03.1985", // last day of window
		"Carol": "18.03.1985", // one day past the window
		"Dave":  "12.03.2000",
		"Eve":   "01.03.1970", // already passed
		"Frank": "",
	})

	got := summarize(ab.UpcomingBirthdays(date(2024, time.March, 10), DefaultWindowDays, WindowCalendar))
	want := []upcomingEntry{
		{Name: "Ann", Days: 0},
		{Name: "Dave", Days: 2},
		{Name: "Bob", Days: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcomingBirthdaysCalendarAcrossYearEnd(t *testing.T) {
	ab := bookWithBirthdays(t, map[string]string{
		"Ann": "02.01.1990",
		"Bob": "30.12.1990",
	})

	got := summarize(ab.UpcomingBirthdays(date(2024, time.December, 28), DefaultWindowDays, WindowCalendar))
	want := []upcomingEntry{
		{Name: "Bob", Days: 2},
		{Name: "Ann", Days: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcomingBirthdaysTuple(t *testing.T) {
	t.Run("year-end window misses January birthday", func(t *testing.T) {
		ab := bookWithBirthdays(t, map[string]string{"Ann": "02.01.1990"})

		got := ab.UpcomingBirthdays(date(2024, time.December, 28), DefaultWindowDays, WindowTuple)
		if len(got) != 0 {
			t.Errorf("Expected tuple ordering to exclude (2, 1), got %v", summarize(got))
		}
	})

	t.Run("same-month window matches like calendar", func(t *testing.T) {
		ab := bookWithBirthdays(t, map[string]string{
			"Ann": "10.03.1990",
			"Bob": "17.03.1990",
			"Eve": "09.03.1990",
		})

		got := summarize(ab.UpcomingBirthdays(date(2024, time.March, 10), DefaultWindowDays, WindowTuple))
		want := []upcomingEntry{
			{Name: "Ann", Days: 0},
			{Name: "Bob", Days: 7},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("day-first ordering admits later months", func(t *testing.T) {
		ab := bookWithBirthdays(t, map[string]string{"Ann": "12.07.1990"})

		got := ab.UpcomingBirthdays(date(2024, time.March, 10), DefaultWindowDays, WindowTuple)
		if len(got) != 1 || got[0].Record.Name() != "Ann" {
			t.Fatalf("Expected (12, 7) to sit between (10, 3) and (17, 3), got %v", summarize(got))
		}
		if got[0].Days != 124 {
			t.Errorf("Expected real distance of 124 days, got %d", got[0].Days)
		}
	})
}

func TestUpcomingBirthdaysWindowSize(t *testing.T) {
	ab := bookWithBirthdays(t, map[string]string{"Ann": "10.03.1990", "Bob": "11.03.1990"})
	now := date(2024, time.March, 10)

	if got := summarize(ab.UpcomingBirthdays(now, 0, WindowCalendar)); len(got) != 1 || got[0].Name != "Ann" {
		t.Errorf("Expected only today's birthday for a zero window, got %v", got)
	}
	if got := ab.UpcomingBirthdays(now, -1, WindowCalendar); got != nil {
		t.Errorf("Expected nil for a negative window, got %v", summarize(got))
	}
}
