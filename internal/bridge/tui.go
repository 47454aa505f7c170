package bridge

import (
	"context"
	"fmt"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/guilhermegouw/phonebook/internal/debug"
	"github.com/guilhermegouw/phonebook/internal/events"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
)

// Sender delivers messages to a running Bubble Tea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// TUIBridge subscribes to contact events and forwards them to the program.
// It handles the conversion from domain events to Bubble Tea messages.
type TUIBridge struct { //nolint:govet // fieldalignment: preserving logical field order
	source  pubsub.Subscriber[events.ContactEvent]
	program Sender

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	nameFilter string // Only forward events for this contact
}

// TUIBridgeOption configures the TUIBridge.
type TUIBridgeOption func(*TUIBridge)

// WithNameFilter only forwards events for the named contact.
func WithNameFilter(name string) TUIBridgeOption {
	return func(b *TUIBridge) {
		b.nameFilter = name
	}
}

// NewTUIBridge creates a bridge that forwards events from source, usually
// the hub's Contact broker.
func NewTUIBridge(source pubsub.Subscriber[events.ContactEvent], program Sender, opts ...TUIBridgeOption) *TUIBridge {
	b := &TUIBridge{
		source:  source,
		program: program,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Start begins forwarding events to the TUI.
// Call Stop() to gracefully shut down.
func (b *TUIBridge) Start(ctx context.Context) {
	b.ctx, b.cancel = context.WithCancel(ctx)

	// Subscribe before returning so no event published after Start is missed.
	ch := b.source.Subscribe(b.ctx)

	b.wg.Add(1)
	go b.forwardContact(ch)

	debug.Event("bridge", "start", "TUI bridge started")
}

// Stop gracefully shuts down the bridge.
func (b *TUIBridge) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	debug.Event("bridge", "stop", "TUI bridge stopped")
}

func (b *TUIBridge) forwardContact(ch <-chan pubsub.Event[events.ContactEvent]) {
	defer b.wg.Done()

	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			if b.nameFilter != "" && event.Payload.Name != b.nameFilter {
				continue
			}

			debug.Event("bridge", "forward", fmt.Sprintf("type=%s name=%s", event.Payload.Type, event.Payload.Name))
			b.program.Send(ContactEventMsg{Event: event})
		}
	}
}
