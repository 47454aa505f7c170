// Package events defines the domain events published by the address book.
package events

import "time"

// ContactEventType represents contact-specific event types.
type ContactEventType string

// Contact event type constants.
const (
	ContactEventAdded        ContactEventType = "added"
	ContactEventReplaced     ContactEventType = "replaced"
	ContactEventDeleted      ContactEventType = "deleted"
	ContactEventPhoneAdded   ContactEventType = "phone_added"
	ContactEventPhoneRemoved ContactEventType = "phone_removed"
	ContactEventPhoneChanged ContactEventType = "phone_changed"
	ContactEventBirthdaySet  ContactEventType = "birthday_set"
)

// ContactEvent describes a change to one contact in the address book.
type ContactEvent struct {
	RecordID  string
	Name      string
	Type      ContactEventType
	Timestamp time.Time

	// Optional fields
	Detail string // phone number or birthday involved in the change
}

// NewContactEvent creates an event of the given type for a contact.
func NewContactEvent(typ ContactEventType, recordID, name string) ContactEvent {
	return ContactEvent{
		RecordID:  recordID,
		Name:      name,
		Type:      typ,
		Timestamp: time.Now(),
	}
}

// WithDetail returns a copy of the event carrying detail.
func (e ContactEvent) WithDetail(detail string) ContactEvent {
	e.Detail = detail
	return e
}

// Summary renders the event as a short status line.
func (e ContactEvent) Summary() string {
	switch e.Type {
	case ContactEventAdded:
		return "added " + e.Name
	case ContactEventReplaced:
		return "replaced " + e.Name
	case ContactEventDeleted:
		return "deleted " + e.Name
	case ContactEventPhoneAdded:
		return "new phone for " + e.Name
	case ContactEventPhoneRemoved:
		return "phone removed from " + e.Name
	case ContactEventPhoneChanged:
		return "phone changed for " + e.Name
	case ContactEventBirthdaySet:
		return "birthday set for " + e.Name
	default:
		return string(e.Type) + " " + e.Name
	}
}
