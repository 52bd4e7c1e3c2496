package core

import "errors"

// Domain errors. The transport layer maps these to response codes; the
// core never deals in HTTP statuses.
var (
	// ErrRoomNotFound is returned when an operation references an unknown room.
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidInput is returned when caller-supplied data is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
