// Package broadcast propagates "the document set changed, re-fetch"
// signals. Two delivery paths compose: an in-process Bus for
// subscribers in the same process, and a Pulse file for other
// processes watching the state directory. Neither path carries data;
// the signal itself is the message.
package broadcast

import "sync"

// TopicFilesChanged is the only topic the CLI currently emits.
const TopicFilesChanged = "files.changed"

// Bus is an in-process topic registry. Handlers run synchronously on
// the notifying goroutine.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for topic and returns its unsubscribe
// function. Callers must unsubscribe on teardown; a handler that
// outlives its owner fires against torn-down state.
func (b *Bus) Subscribe(topic string, fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Notify invokes every handler currently subscribed to topic exactly
// once. Handlers are snapshotted under the lock and invoked outside
// it, so a handler may subscribe or unsubscribe without deadlocking.
func (b *Bus) Notify(topic string) {
	b.mu.Lock()
	handlers := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
