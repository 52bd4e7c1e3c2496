package http

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/webBlaster/room-rant-backend/internal/proto"
)

func postJSON(t *testing.T, handler stdhttp.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(stdhttp.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder, data any) proto.Envelope {
	t.Helper()

	var env struct {
		Status  int             `json:"status"`
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v: %s", err, resp.Body.String())
	}
	if data != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to unmarshal envelope data: %v", err)
		}
	}
	return proto.Envelope{Status: env.Status, Success: env.Success, Message: env.Message}
}

func TestJoinRoom(t *testing.T) {
	server, _ := newTestServer(t, time.Minute)

	// Valid join
	resp := postJSON(t, server.Handler, "/rooms/"+testRoomID+"/join", `{"user_id":"user123","user_name":"John Doe"}`)
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var join proto.JoinData
	env := decodeEnvelope(t, resp, &join)
	if !env.Success || join.RoomID != testRoomID || join.UserID != "user123" {
		t.Errorf("unexpected join response: %+v %+v", env, join)
	}

	// Missing user_name
	resp = postJSON(t, server.Handler, "/rooms/"+testRoomID+"/join", `{"user_id":"user123"}`)
	if resp.Code != stdhttp.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.Code)
	}
	env = decodeEnvelope(t, resp, nil)
	if env.Success || env.Status != stdhttp.StatusBadRequest {
		t.Errorf("unexpected error envelope: %+v", env)
	}

	// Unknown room
	resp = postJSON(t, server.Handler, "/rooms/ghost/join", `{"user_id":"user123","user_name":"John Doe"}`)
	if resp.Code != stdhttp.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
}

func TestSendMessage(t *testing.T) {
	server, hub := newTestServer(t, time.Minute)

	resp := postJSON(t, server.Handler, "/rooms/"+testRoomID+"/messages", `{"user_id":"user123","user_name":"John Doe","message":"Hello everyone!"}`)
	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var sent proto.SendMessageData
	env := decodeEnvelope(t, resp, &sent)
	if !env.Success || sent.MessageID == "" || sent.RoomID != testRoomID {
		t.Errorf("unexpected send response: %+v %+v", env, sent)
	}

	history, err := hub.Snapshot(testRoomID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(history) != 1 || history[0].Text != "Hello everyone!" || history[0].ID != sent.MessageID {
		t.Errorf("message not logged correctly: %+v", history)
	}

	// Missing message field
	resp = postJSON(t, server.Handler, "/rooms/"+testRoomID+"/messages", `{"user_id":"user123","user_name":"John Doe"}`)
	if resp.Code != stdhttp.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.Code)
	}

	// Unknown room must not mutate any log
	resp = postJSON(t, server.Handler, "/rooms/ghost/messages", `{"user_id":"user123","user_name":"John Doe","message":"boo"}`)
	if resp.Code != stdhttp.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
	history, _ = hub.Snapshot(testRoomID)
	if len(history) != 1 {
		t.Errorf("failed publish mutated the log: %d messages", len(history))
	}
}

func TestListRooms(t *testing.T) {
	server, hub := newTestServer(t, time.Minute)

	req := httptest.NewRequest(stdhttp.MethodGet, "/rooms", nil)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data proto.RoomsData
	env := decodeEnvelope(t, resp, &data)
	if !env.Success || data.TotalRooms != 1 || len(data.Rooms) != 1 {
		t.Fatalf("unexpected rooms response: %+v %+v", env, data)
	}
	room := data.Rooms[0]
	if room.ID != testRoomID || room.Name != "Chelsea vs Barca" || room.ActiveUsers != 0 {
		t.Errorf("unexpected room entry: %+v", room)
	}

	// A live subscriber shows up in active_users.
	sub, _, err := hub.Subscribe(testRoomID)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer hub.Unsubscribe(testRoomID, sub)

	resp = httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, httptest.NewRequest(stdhttp.MethodGet, "/rooms", nil))
	data = proto.RoomsData{}
	decodeEnvelope(t, resp, &data)
	if len(data.Rooms) != 1 || data.Rooms[0].ActiveUsers != 1 {
		t.Errorf("expected active_users 1, got %+v", data.Rooms)
	}
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, time.Minute)

	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	server.Handler.ServeHTTP(resp, req)

	if resp.Code != stdhttp.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal health response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected health response: %v", body)
	}
}
