package core

import "sync"

// room holds the per-room state: the append-only message log and the set
// of live subscribers. Both live under one mutex so that append+fan-out
// and register+snapshot are each atomic, which keeps the replay/live
// boundary of a new subscriber free of gaps and duplicates.
type room struct {
	mu       sync.Mutex
	messages []Message
	subs     map[*Subscriber]struct{}
}

func newRoom() *room {
	return &room{
		subs: make(map[*Subscriber]struct{}),
	}
}

// append records the message and enqueues it for every subscriber. Sends
// are non-blocking: a subscriber whose queue is full is removed on the
// spot so one stalled connection never delays the rest of the room.
// Returns the handles that were dropped.
func (r *room) append(msg Message) []*Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)

	var dropped []*Subscriber
	for sub := range r.subs {
		select {
		case sub.events <- msg:
		default:
			delete(r.subs, sub)
			sub.closed = true
			close(sub.events)
			dropped = append(dropped, sub)
		}
	}
	return dropped
}

// subscribe registers sub and returns the message history as of
// registration. Anything published after subscribe returns arrives on the
// subscriber's channel instead.
func (r *room) subscribe(sub *Subscriber) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]Message, len(r.messages))
	copy(history, r.messages)
	r.subs[sub] = struct{}{}
	return history
}

// unsubscribe removes sub from the room. Idempotent: the hub may already
// have dropped the subscriber after a failed delivery.
func (r *room) unsubscribe(sub *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[sub]; !ok {
		return
	}
	delete(r.subs, sub)
	if !sub.closed {
		sub.closed = true
		close(sub.events)
	}
}

// snapshot returns all messages recorded so far, in publish order.
func (r *room) snapshot() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]Message, len(r.messages))
	copy(history, r.messages)
	return history
}

func (r *room) subscriberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
