package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/guilhermegouw/phonebook/internal/contact"
	"github.com/guilhermegouw/phonebook/internal/events"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
)

func newRecord(t *testing.T, name string, phones ...string) *contact.Record {
	t.Helper()
	r, err := contact.NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q): %v", name, err)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}
	return r
}

func phoneStrings(r *contact.Record) []string {
	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out
}

func TestAddRecord(t *testing.T) {
	t.Run("rejects nil and unnamed records", func(t *testing.T) {
		ab := New()

		if _, err := ab.AddRecord(nil); !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("Expected ErrInvalidRecord for nil, got %v", err)
		}
		_, err := ab.AddRecord(&contact.Record{})
		if !errors.Is(err, ErrInvalidRecord) || !errors.Is(err, contact.ErrInvalidName) {
			t.Errorf("Expected ErrInvalidRecord and ErrInvalidName for zero record, got %v", err)
		}
		if ab.Len() != 0 {
			t.Errorf("Expected empty book, got %d records", ab.Len())
		}
	})

	t.Run("stores record under its name", func(t *testing.T) {
		ab := New()
		r := newRecord(t, "Ann")

		replaced, err := ab.AddRecord(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if replaced {
			t.Error("Expected first add not to replace")
		}

		got, ok := ab.Find("Ann")
		if !ok || got != r {
			t.Fatalf("Find(Ann) = (%v, %v), want the added record", got, ok)
		}
		if got.Name() != "Ann" {
			t.Errorf("Expected key and name to match, got %q", got.Name())
		}
	})

	t.Run("same name overwrites", func(t *testing.T) {
		ab := New()
		first := newRecord(t, "Ann", "1111111111")
		second := newRecord(t, "Ann")

		ab.AddRecord(first)
		if replaced, _ := ab.AddRecord(second); !replaced {
			t.Error("Expected second add to replace")
		}

		if ab.Len() != 1 {
			t.Fatalf("Expected exactly one record, got %d", ab.Len())
		}
		got, _ := ab.Find("Ann")
		if got != second {
			t.Error("Expected the second record to win")
		}
		if len(got.Phones()) != 0 {
			t.Errorf("Expected old phones to be gone, got %v", phoneStrings(got))
		}
	})
}

func TestFind(t *testing.T) {
	ab := New()
	if _, ok := ab.Find("Nobody"); ok {
		t.Error("Expected miss on empty book")
	}
}

func TestDelete(t *testing.T) {
	t.Run("removes existing record", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Carol"))

		if err := ab.Delete("Carol"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ab.Find("Carol"); ok {
			t.Error("Expected Carol to be gone")
		}
	})

	t.Run("missing name is NotFound", func(t *testing.T) {
		ab := New()
		err := ab.Delete("Carol")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("second delete fails", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Carol"))
		_ = ab.Delete("Carol")
		if err := ab.Delete("Carol"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestChangePhone(t *testing.T) {
	t.Run("replaces first phone", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Bob", "0000000000"))

		if err := ab.ChangePhone("Bob", "1234567890"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, _ := ab.Find("Bob")
		if diff := cmp.Diff([]string{"1234567890"}, phoneStrings(r)); diff != "" {
			t.Errorf("phones mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("only the first phone changes", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Bob", "0000000000", "0000000000", "1111111111"))

		if err := ab.ChangePhone("Bob", "2222222222"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, _ := ab.Find("Bob")
		want := []string{"2222222222", "0000000000", "1111111111"}
		if diff := cmp.Diff(want, phoneStrings(r)); diff != "" {
			t.Errorf("phones mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing record is a no-op", func(t *testing.T) {
		ab := New()
		if err := ab.ChangePhone("Bob", "1234567890"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if ab.Len() != 0 {
			t.Error("Expected book to stay empty")
		}
	})

	t.Run("record without phones is a no-op", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Bob"))
		if err := ab.ChangePhone("Bob", "1234567890"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		r, _ := ab.Find("Bob")
		if len(r.Phones()) != 0 {
			t.Errorf("Expected no phones, got %v", phoneStrings(r))
		}
	})

	t.Run("invalid new phone propagates", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Bob", "0000000000"))
		err := ab.ChangePhone("Bob", "12")
		if !errors.Is(err, contact.ErrInvalidPhone) {
			t.Errorf("Expected ErrInvalidPhone, got %v", err)
		}
		r, _ := ab.Find("Bob")
		if diff := cmp.Diff([]string{"0000000000"}, phoneStrings(r)); diff != "" {
			t.Errorf("phones mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAddPhone(t *testing.T) {
	ab := New()
	ab.AddRecord(newRecord(t, "Ann", "1111111111"))

	if err := ab.AddPhone("Ann", "2222222222"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := ab.Find("Ann")
	if diff := cmp.Diff([]string{"1111111111", "2222222222"}, phoneStrings(r)); diff != "" {
		t.Errorf("phones mismatch (-want +got):\n%s", diff)
	}

	if err := ab.AddPhone("Nobody", "2222222222"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := ab.AddPhone("Ann", "bad"); !errors.Is(err, contact.ErrInvalidPhone) {
		t.Errorf("Expected ErrInvalidPhone, got %v", err)
	}
}

func TestRemovePhone(t *testing.T) {
	ab := New()
	ab.AddRecord(newRecord(t, "Ann", "5555555555", "5555555555", "1111111111"))

	if err := ab.RemovePhone("Ann", "5555555555"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := ab.Find("Ann")
	if diff := cmp.Diff([]string{"1111111111"}, phoneStrings(r)); diff != "" {
		t.Errorf("phones mismatch (-want +got):\n%s", diff)
	}

	if err := ab.RemovePhone("Nobody", "1111111111"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSetBirthday(t *testing.T) {
	ab := New()
	ab.AddRecord(newRecord(t, "Ann"))
	b, _ := contact.ParseBirthday("24.12.1990")

	if err := ab.SetBirthday("Ann", b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := ab.Find("Ann")
	got, ok := r.Birthday()
	if !ok || got != b {
		t.Errorf("Birthday() = (%v, %v), want (%v, true)", got, ok, b)
	}

	if err := ab.SetBirthday("Nobody", b); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestShowPhone(t *testing.T) {
	ab := New()
	ab.AddRecord(newRecord(t, "Ann", "1111111111", "2222222222"))
	ab.AddRecord(newRecord(t, "Bob"))

	got, ok := ab.ShowPhone("Ann")
	if !ok || got != "1111111111; 2222222222" {
		t.Errorf("ShowPhone(Ann) = (%q, %v)", got, ok)
	}

	got, ok = ab.ShowPhone("Bob")
	if !ok || got != "" {
		t.Errorf("ShowPhone(Bob) = (%q, %v), want empty and true", got, ok)
	}

	if _, ok := ab.ShowPhone("Nobody"); ok {
		t.Error("Expected miss for unknown contact")
	}
}

func TestListAll(t *testing.T) {
	t.Run("empty book", func(t *testing.T) {
		if got := New().ListAll(); got != "" {
			t.Errorf("Expected empty string, got %q", got)
		}
	})

	t.Run("one line per record ordered by name", func(t *testing.T) {
		ab := New()
		ab.AddRecord(newRecord(t, "Zed", "2222222222"))
		ab.AddRecord(newRecord(t, "Ann", "1111111111"))

		want := "Contact name: Ann, phones: 1111111111, birthday: -\n" +
			"Contact name: Zed, phones: 2222222222, birthday: -"
		if got := ab.ListAll(); got != want {
			t.Errorf("ListAll() =\n%s\nwant\n%s", got, want)
		}
	})
}

func TestBookPublishesEvents(t *testing.T) {
	broker := pubsub.NewBroker[events.ContactEvent]("contact")
	defer broker.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	ab := New(WithBroker(broker))
	ab.AddRecord(newRecord(t, "Ann", "0000000000"))
	ab.AddRecord(newRecord(t, "Ann", "0000000000"))
	_ = ab.AddPhone("Ann", "1111111111")
	_ = ab.ChangePhone("Ann", "2222222222")
	_ = ab.RemovePhone("Ann", "1111111111")
	_ = ab.RemovePhone("Ann", "9999999999") // absent, publishes nothing
	b, _ := contact.ParseBirthday("01.01.2000")
	_ = ab.SetBirthday("Ann", b)
	_ = ab.Delete("Ann")
	_ = ab.Delete("Ann") // fails, publishes nothing

	want := []events.ContactEventType{
		events.ContactEventAdded,
		events.ContactEventReplaced,
		events.ContactEventPhoneAdded,
		events.ContactEventPhoneChanged,
		events.ContactEventPhoneRemoved,
		events.ContactEventBirthdaySet,
		events.ContactEventDeleted,
	}

	var got []events.ContactEventType
	for range want {
		select {
		case ev := <-ch:
			got = append(got, ev.Payload.Type)
			if ev.Payload.Name != "Ann" {
				t.Errorf("expected event for Ann, got %q", ev.Payload.Name)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("timeout after %d events", len(got))
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	select {
	case ev := <-ch:
		t.Errorf("unexpected extra event: %+v", ev.Payload)
	default:
	}
}

// recordingPublisher collects published events synchronously.
type recordingPublisher struct {
	types []pubsub.EventType
}

func (p *recordingPublisher) Publish(typ pubsub.EventType, _ events.ContactEvent) {
	p.types = append(p.types, typ)
}

func TestBookPublishesThroughAnyPublisher(t *testing.T) {
	pub := &recordingPublisher{}
	ab := New(WithBroker(pub))

	ab.AddRecord(newRecord(t, "Ann"))
	_ = ab.AddPhone("Ann", "0000000000")
	_ = ab.Delete("Ann")
	ab.AddRecord(nil)

	want := []pubsub.EventType{pubsub.EventCreated, pubsub.EventUpdated, pubsub.EventDeleted}
	if diff := cmp.Diff(want, pub.types); diff != "" {
		t.Errorf("event types mismatch (-want +got):\n%s", diff)
	}
}
