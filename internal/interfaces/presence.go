package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_presence_mirror.go -package=mocks duoChat/internal/interfaces PresenceMirror

// Pusher is one live connection able to receive a single event.
type Pusher interface {
	Push(event string, payload any) error
}

// Broadcaster delivers an event to every open connection.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

type PresenceLookup interface {
	Lookup(userID string) (Pusher, bool)
}

// PresenceMirror publishes the in-process presence state to an external
// store with a TTL. It is a projection only, nothing reads it back.
type PresenceMirror interface {
	SetOnline(ctx context.Context, userID string, ttl time.Duration) error
	SetOffline(ctx context.Context, userID string) error
}
