package pubsub

import (
	"fmt"

	"github.com/guilhermegouw/phonebook/internal/events"
)

// Hub is the central container for the application's brokers.
type Hub struct { //nolint:govet // fieldalignment: preserving logical field order
	Contact *Broker[events.ContactEvent]

	done chan struct{}
}

// NewHub creates a new Hub with all brokers initialized.
func NewHub() *Hub {
	return &Hub{
		Contact: NewBroker[events.ContactEvent]("contact"),
		done:    make(chan struct{}),
	}
}

// Shutdown shuts down all brokers.
func (h *Hub) Shutdown() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}
	h.Contact.Shutdown()
}

// IsShutdown returns true if the hub has been shut down.
func (h *Hub) IsShutdown() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that's closed when the hub is shut down.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// AllMetrics returns metrics for all brokers.
func (h *Hub) AllMetrics() []BrokerMetrics {
	return []BrokerMetrics{h.Contact.Metrics()}
}

// DebugString returns a one-line summary per broker.
func (h *Hub) DebugString() string {
	var out string
	for _, m := range h.AllMetrics() {
		out += fmt.Sprintf("%s: subs=%d, published=%d, dropped=%d\n",
			m.Name, m.SubscriberCount, m.PublishCount, m.DropCount)
	}
	return out
}
