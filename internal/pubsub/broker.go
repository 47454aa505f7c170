package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBufferSize is the default channel buffer for subscribers.
const DefaultBufferSize = 32

// BrokerOption configures a Broker.
type BrokerOption[T any] func(*Broker[T])

// WithBufferSize sets the subscriber channel buffer size.
func WithBufferSize[T any](size int) BrokerOption[T] {
	return func(b *Broker[T]) {
		b.bufferSize = size
	}
}

// Broker fans events out to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the event and the drop is counted.
type Broker[T any] struct { //nolint:govet // fieldalignment: preserving logical field order
	name       string
	subs       map[chan Event[T]]struct{}
	mu         sync.RWMutex
	done       chan struct{}
	bufferSize int

	published atomic.Int64
	dropped   atomic.Int64
}

// NewBroker creates a new typed broker with optional configuration.
func NewBroker[T any](name string, opts ...BrokerOption[T]) *Broker[T] {
	b := &Broker[T]{
		name:       name,
		subs:       make(map[chan Event[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the broker's name for debugging.
func (b *Broker[T]) Name() string {
	return b.name
}

// Subscribe returns a channel that receives events until ctx is done or the
// broker shuts down, at which point the channel is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.IsShutdown() {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.bufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		// Shutdown may have closed it already.
		if _, ok := b.subs[sub]; !ok {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish sends an event to all current subscribers.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.IsShutdown() || len(b.subs) == 0 {
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	b.published.Add(1)

	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Shutdown closes every subscriber channel. Later publishes are ignored.
func (b *Broker[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.IsShutdown() {
		return
	}
	close(b.done)

	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// IsShutdown returns true if the broker has been shut down.
func (b *Broker[T]) IsShutdown() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// SubscriberCount returns the current number of subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Metrics returns the broker's counters for debugging.
func (b *Broker[T]) Metrics() BrokerMetrics {
	return BrokerMetrics{
		Name:            b.name,
		PublishCount:    b.published.Load(),
		DropCount:       b.dropped.Load(),
		SubscriberCount: b.SubscriberCount(),
	}
}

// BrokerMetrics contains broker statistics for debugging.
type BrokerMetrics struct {
	Name            string
	PublishCount    int64
	DropCount       int64
	SubscriberCount int
}
