package socket

import "errors"

// Event is the frame written to every socket: {"event": ..., "payload": ...}.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

var (
	ErrClientQueueFull = errors.New("client send queue is full")
	ErrClientClosed    = errors.New("client connection is closed")
)
