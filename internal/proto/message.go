package proto

// Envelope is the response wrapper every REST endpoint returns.
type Envelope struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// MessageEvent is a chat message on the wire, both inside REST responses
// and as an SSE data payload.
type MessageEvent struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Text      string `json:"message"`
	Timestamp string `json:"timestamp"`
	RoomID    string `json:"room_id"`
}

// PingType marks a keep-alive event, distinguishable from real messages
// by clients.
const PingType = "ping"

// PingEvent is the keep-alive SSE payload.
type PingEvent struct {
	Type string `json:"type"`
}

// Room describes one room in the catalog listing.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	ActiveUsers int    `json:"active_users"`
}

// RoomsData is the payload of the room listing response.
type RoomsData struct {
	Rooms      []Room `json:"rooms"`
	TotalRooms int    `json:"total_rooms"`
}

// JoinData echoes a successful join back to the caller.
type JoinData struct {
	RoomID   string `json:"room_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// SendMessageData confirms a published message.
type SendMessageData struct {
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
}
