package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Room is a catalog entry: static display metadata keyed by the room id.
// The broadcast core only keys its state by ID; everything else is for
// the listing endpoint.
type Room struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// RoomStore handles the room catalog.
type RoomStore interface {
	// SeedRooms inserts catalog entries, leaving existing ids untouched.
	SeedRooms(ctx context.Context, rooms []Room) error

	// GetRoom retrieves a room by id. Returns ErrNotFound if it does not exist.
	GetRoom(ctx context.Context, id string) (*Room, error)

	// ListRooms returns the catalog in creation order.
	ListRooms(ctx context.Context) ([]*Room, error)
}

// Store aggregates all storage interfaces.
type Store interface {
	RoomStore

	// Close closes the underlying database connection.
	Close() error
}
