package repositories

import (
	"context"
	"time"

	"duoChat/internal/interfaces"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ interfaces.TokenBlacklist = (*TokenBlacklistRepository)(nil)

func revokedKey(tokenID string) string { return "duochat:revoked:" + tokenID }

type TokenBlacklistRepository struct {
	rdb *redis.Client
}

func NewTokenBlacklistRepository(rdb *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{rdb: rdb}
}

// Revoke remembers tokenID until ttl elapses. A non-positive ttl means the
// token has already expired and nothing is stored.
func (tb *TokenBlacklistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return pkgerrors.Wrap(tb.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err(), "revoke token")
}

func (tb *TokenBlacklistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := tb.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, pkgerrors.Wrap(err, "check revoked token")
	}
	return n > 0, nil
}
