package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/proto"
	"github.com/webBlaster/room-rant-backend/internal/store"
)

// RoomHandlers provides the REST endpoints around the broadcast core:
// room listing, join validation, and message publishing.
type RoomHandlers struct {
	hub   *core.Hub
	store store.Store
	log   *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(hub *core.Hub, st store.Store, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		hub:   hub,
		store: st,
		log:   logger,
	}
}

// JoinRoomRequest represents the join request body.
type JoinRoomRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
}

// SendMessageRequest represents the send message request body.
type SendMessageRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	Text     string `json:"message" binding:"required"`
}

// ListRooms handles the room catalog listing.
// GET /rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list rooms")
		c.JSON(stdhttp.StatusInternalServerError, errorEnvelope(stdhttp.StatusInternalServerError, "internal server error"))
		return
	}

	entries := make([]proto.Room, 0, len(rooms))
	for _, room := range rooms {
		entries = append(entries, roomEntry(room, h.hub.SubscriberCount(room.ID)))
	}

	c.JSON(stdhttp.StatusOK, okEnvelope("Rooms retrieved successfully", proto.RoomsData{
		Rooms:      entries,
		TotalRooms: len(entries),
	}))
}

// JoinRoom validates a user's intent to participate in a room. It does not
// open a stream; connecting is a separate step.
// POST /rooms/:room_id/join
func (h *RoomHandlers) JoinRoom(c *gin.Context) {
	roomID := c.Param("room_id")

	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Str("room_id", roomID).Msg("invalid join request")
		c.JSON(stdhttp.StatusBadRequest, errorEnvelope(stdhttp.StatusBadRequest, "user_id and user_name are required"))
		return
	}

	if err := h.hub.Join(roomID, req.UserID, req.UserName); err != nil {
		h.respondCoreError(c, err)
		return
	}

	h.log.Info().Str("room_id", roomID).Str("user_id", req.UserID).Msg("user joined room")
	c.JSON(stdhttp.StatusOK, okEnvelope(fmt.Sprintf("Successfully joined room %s", roomID), proto.JoinData{
		RoomID:   roomID,
		UserID:   req.UserID,
		UserName: req.UserName,
	}))
}

// SendMessage publishes a message to a room and fans it out to all
// connected stream sessions.
// POST /rooms/:room_id/messages
func (h *RoomHandlers) SendMessage(c *gin.Context) {
	roomID := c.Param("room_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Str("room_id", roomID).Msg("invalid send message request")
		c.JSON(stdhttp.StatusBadRequest, errorEnvelope(stdhttp.StatusBadRequest, "user_id, user_name, and message are required"))
		return
	}

	msg, err := h.hub.Publish(roomID, req.UserID, req.UserName, req.Text)
	if err != nil {
		h.respondCoreError(c, err)
		return
	}

	h.log.Info().
		Str("room_id", roomID).
		Str("message_id", msg.ID).
		Str("user_id", req.UserID).
		Msg("message published")
	c.JSON(stdhttp.StatusOK, okEnvelope("Message sent successfully", proto.SendMessageData{
		MessageID: msg.ID,
		RoomID:    roomID,
	}))
}

func (h *RoomHandlers) respondCoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrRoomNotFound):
		c.JSON(stdhttp.StatusNotFound, errorEnvelope(stdhttp.StatusNotFound, "Room not found"))
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(stdhttp.StatusBadRequest, errorEnvelope(stdhttp.StatusBadRequest, "invalid input"))
	default:
		h.log.Error().Err(err).Msg("unexpected core error")
		c.JSON(stdhttp.StatusInternalServerError, errorEnvelope(stdhttp.StatusInternalServerError, "internal server error"))
	}
}
