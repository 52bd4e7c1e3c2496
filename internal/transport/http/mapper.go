package http

import (
	stdhttp "net/http"
	"time"

	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/proto"
	"github.com/webBlaster/room-rant-backend/internal/store"
)

func messageEvent(msg core.Message) proto.MessageEvent {
	return proto.MessageEvent{
		ID:        msg.ID,
		UserID:    msg.UserID,
		UserName:  msg.UserName,
		Text:      msg.Text,
		Timestamp: msg.Timestamp.Format(time.RFC3339Nano),
		RoomID:    msg.RoomID,
	}
}

func roomEntry(room *store.Room, activeUsers int) proto.Room {
	return proto.Room{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
		ActiveUsers: activeUsers,
	}
}

func okEnvelope(message string, data any) proto.Envelope {
	return proto.Envelope{
		Status:  stdhttp.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorEnvelope(status int, message string) proto.Envelope {
	return proto.Envelope{
		Status:  status,
		Success: false,
		Message: message,
	}
}
