package http

import (
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/proto"
)

// StreamHandler serves the SSE endpoint that relays room messages live.
type StreamHandler struct {
	hub       *core.Hub
	keepAlive time.Duration
	log       *zerolog.Logger
}

// NewStreamHandler builds a stream handler. keepAlive is the idle interval
// after which a ping event is emitted.
func NewStreamHandler(hub *core.Hub, keepAlive time.Duration, logger *zerolog.Logger) *StreamHandler {
	if keepAlive <= 0 {
		keepAlive = 30 * time.Second
	}
	return &StreamHandler{
		hub:       hub,
		keepAlive: keepAlive,
		log:       logger,
	}
}

// Stream relays a room's messages over Server-Sent Events: the full
// history is replayed first, then live messages as they are published,
// with a ping event after each idle keep-alive interval. The subscriber
// is deregistered on every exit path.
// GET /rooms/:room_id/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	roomID := c.Param("room_id")

	sub, history, err := h.hub.Subscribe(roomID)
	if err != nil {
		c.JSON(stdhttp.StatusNotFound, errorEnvelope(stdhttp.StatusNotFound, "Room not found"))
		return
	}
	defer h.hub.Unsubscribe(roomID, sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	h.log.Debug().
		Str("room_id", roomID).
		Str("subscriber_id", sub.ID()).
		Int("history", len(history)).
		Msg("stream session started")

	for _, msg := range history {
		if err := writeEvent(c.Writer, messageEvent(msg)); err != nil {
			return
		}
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	idle := time.NewTimer(h.keepAlive)
	defer idle.Stop()

	for {
		select {
		case msg, ok := <-sub.Events():
			if !ok {
				// The hub dropped this subscriber after a failed delivery.
				h.log.Warn().
					Str("room_id", roomID).
					Str("subscriber_id", sub.ID()).
					Msg("stream session dropped by hub")
				return
			}
			if err := writeEvent(c.Writer, messageEvent(msg)); err != nil {
				return
			}
			c.Writer.Flush()
			idle.Reset(h.keepAlive)
		case <-idle.C:
			if err := writeEvent(c.Writer, proto.PingEvent{Type: proto.PingType}); err != nil {
				return
			}
			c.Writer.Flush()
			idle.Reset(h.keepAlive)
		case <-ctx.Done():
			h.log.Debug().
				Str("room_id", roomID).
				Str("subscriber_id", sub.ID()).
				Msg("stream session closed")
			return
		}
	}
}

// writeEvent frames one payload as an SSE data event.
func writeEvent(w io.Writer, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
