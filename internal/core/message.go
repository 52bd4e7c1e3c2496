package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is the domain model for a chat message. Once created it is
// never mutated.
type Message struct {
	ID        string
	RoomID    string
	UserID    string
	UserName  string
	Text      string
	Timestamp time.Time
}

// newMessage stamps a message with a fresh id and the current wall clock.
func newMessage(roomID, userID, userName, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		Timestamp: time.Now(),
	}
}
