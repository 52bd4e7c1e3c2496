package core

// Subscriber is the registration handle for one live stream connection.
// It exists from stream-connect to stream-disconnect. The events channel
// is fed by the hub and consumed only by the owning stream session;
// closed is guarded by the room mutex.
type Subscriber struct {
	id     string
	events chan Message
	closed bool
}

// ID identifies the subscriber in logs.
func (s *Subscriber) ID() string { return s.id }

// Events is the private inbound queue of messages destined for this
// subscriber's connection. It is closed when the subscriber is
// unsubscribed or dropped by the hub.
func (s *Subscriber) Events() <-chan Message { return s.events }
