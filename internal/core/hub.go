package core

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/utils"
)

// DefaultSubscriberBuffer bounds each subscriber's inbound queue when no
// explicit size is configured.
const DefaultSubscriberBuffer = 64

// Hub owns all per-room state and coordinates publishes, subscriptions
// and fan-out across concurrent requests and stream sessions. Rooms are
// registered once at startup; per-room state sits behind per-room locks
// so unrelated rooms never block each other.
type Hub struct {
	log    *zerolog.Logger
	buffer int

	mu    sync.RWMutex
	rooms map[string]*room
}

// NewHub creates an empty hub. Rooms are added with AddRoom before serving.
func NewHub(subscriberBuffer int, logger *zerolog.Logger) *Hub {
	if subscriberBuffer <= 0 {
		subscriberBuffer = DefaultSubscriberBuffer
	}
	return &Hub{
		log:    logger,
		buffer: subscriberBuffer,
		rooms:  make(map[string]*room),
	}
}

// AddRoom registers a room id with the hub. Adding an existing id is a no-op.
func (h *Hub) AddRoom(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[id]; !ok {
		h.rooms[id] = newRoom()
	}
}

// Exists reports whether the room id is known.
func (h *Hub) Exists(roomID string) bool {
	return h.room(roomID) != nil
}

func (h *Hub) room(roomID string) *room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[roomID]
}

// Join validates a participation request. It does not register a
// subscriber; joining and stream-connecting are decoupled.
func (h *Hub) Join(roomID, userID, userName string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(userName) == "" {
		return ErrInvalidInput
	}
	if !h.Exists(roomID) {
		return ErrRoomNotFound
	}
	return nil
}

// Publish appends a new message to the room log and enqueues it for every
// current subscriber. It returns once the message is logged and enqueued;
// it never waits for consumers, and a subscriber whose queue is full is
// dropped rather than failing or delaying the publish.
func (h *Hub) Publish(roomID, userID, userName, text string) (Message, error) {
	r := h.room(roomID)
	if r == nil {
		return Message{}, ErrRoomNotFound
	}

	msg := newMessage(roomID, userID, userName, text)
	for _, sub := range r.append(msg) {
		h.log.Warn().
			Str("room_id", roomID).
			Str("subscriber_id", sub.ID()).
			Msg("subscriber queue full, dropping subscriber")
	}
	return msg, nil
}

// Subscribe registers a new subscriber in the room and returns it together
// with the message history as of registration. The history and the live
// channel never overlap: every message is either in the returned slice or
// arrives on the channel, exactly once.
func (h *Hub) Subscribe(roomID string) (*Subscriber, []Message, error) {
	r := h.room(roomID)
	if r == nil {
		return nil, nil, ErrRoomNotFound
	}

	sub := &Subscriber{
		id:     utils.NewID(),
		events: make(chan Message, h.buffer),
	}
	history := r.subscribe(sub)

	h.log.Debug().
		Str("room_id", roomID).
		Str("subscriber_id", sub.ID()).
		Int("history", len(history)).
		Msg("subscriber registered")
	return sub, history, nil
}

// Unsubscribe removes the subscriber from the room and closes its queue.
// Idempotent: removing an already-removed handle is a no-op.
func (h *Hub) Unsubscribe(roomID string, sub *Subscriber) {
	r := h.room(roomID)
	if r == nil || sub == nil {
		return
	}
	r.unsubscribe(sub)
	h.log.Debug().
		Str("room_id", roomID).
		Str("subscriber_id", sub.ID()).
		Msg("subscriber removed")
}

// Snapshot returns the room's full message history in publish order.
func (h *Hub) Snapshot(roomID string) ([]Message, error) {
	r := h.room(roomID)
	if r == nil {
		return nil, ErrRoomNotFound
	}
	return r.snapshot(), nil
}

// SubscriberCount returns the number of live subscribers in the room,
// or zero for an unknown room.
func (h *Hub) SubscriberCount(roomID string) int {
	r := h.room(roomID)
	if r == nil {
		return 0
	}
	return r.subscriberCount()
}
