package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_token_blacklist.go -package=mocks duoChat/internal/interfaces TokenBlacklist

type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
