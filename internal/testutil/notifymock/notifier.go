package notifymock

import (
	"context"
	"sync"

	"tokenvest-backend/internal/domain/notify"
)

// Ensure compile-time compliance
var _ notify.Notifier = (*Notifier)(nil)

// Notifier records every event it is handed. Set FailWith to simulate a
// broken delivery provider.
type Notifier struct {
	mu       sync.Mutex
	events   []notify.Event
	FailWith error
}

func New() *Notifier { return &Notifier{} }

func (n *Notifier) Notify(ctx context.Context, ev notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.FailWith != nil {
		return n.FailWith
	}
	n.events = append(n.events, ev)
	return nil
}

// Events returns a copy of everything recorded so far.
func (n *Notifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	cp := make([]notify.Event, len(n.events))
	copy(cp, n.events)
	return cp
}

// CountByType tallies recorded events of one type.
func (n *Notifier) CountByType(t notify.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, ev := range n.events {
		if ev.Type == t {
			count++
		}
	}
	return count
}

func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
	n.FailWith = nil
}
