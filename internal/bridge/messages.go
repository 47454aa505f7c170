// Package bridge provides the connection between the pub/sub system and Bubble Tea.
package bridge

import (
	"github.com/guilhermegouw/phonebook/internal/events"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
)

// ContactEventMsg wraps a contact event for the TUI.
type ContactEventMsg struct {
	Event pubsub.Event[events.ContactEvent]
}

// Summary returns the status line for the wrapped event.
func (m ContactEventMsg) Summary() string {
	return m.Event.Payload.Summary()
}
