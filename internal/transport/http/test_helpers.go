package http

import (
	"context"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/webBlaster/room-rant-backend/internal/config"
	"github.com/webBlaster/room-rant-backend/internal/core"
	"github.com/webBlaster/room-rant-backend/internal/store"
	"github.com/webBlaster/room-rant-backend/internal/store/sqlite"
)

const testRoomID = "room1a2b3c"

// newTestServer wires an in-memory store seeded with one room, a hub, and
// the full router.
func newTestServer(t *testing.T, keepAlive time.Duration) (*stdhttp.Server, *core.Hub) {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	err = st.SeedRooms(context.Background(), []store.Room{{
		ID:          testRoomID,
		Name:        "Chelsea vs Barca",
		Description: "Live discussion for Chelsea vs Barcelona match",
	}})
	if err != nil {
		t.Fatalf("failed to seed rooms: %v", err)
	}

	disabledLogger := zerolog.New(nil)

	hub := core.NewHub(8, &disabledLogger)
	hub.AddRoom(testRoomID)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.KeepAliveInterval = keepAlive

	return NewServer(hub, st, &cfg, &disabledLogger), hub
}
