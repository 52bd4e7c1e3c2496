package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub(buffer int, roomIDs ...string) *Hub {
	logger := zerolog.New(nil)
	hub := NewHub(buffer, &logger)
	for _, id := range roomIDs {
		hub.AddRoom(id)
	}
	return hub
}

func mustReceive(t *testing.T, sub *Subscriber) Message {
	t.Helper()

	select {
	case msg, ok := <-sub.Events():
		if !ok {
			t.Fatalf("subscriber channel closed while waiting for message")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("expected message not received")
	}
	return Message{}
}

func mustNotReceive(t *testing.T, sub *Subscriber) {
	t.Helper()

	select {
	case msg, ok := <-sub.Events():
		if ok {
			t.Fatalf("unexpected message received: %+v", msg)
		}
	case <-time.After(100 * time.Millisecond):
	}
}
