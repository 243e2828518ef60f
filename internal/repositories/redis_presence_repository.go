package repositories

import (
	"context"
	"time"

	"duoChat/internal/interfaces"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ interfaces.PresenceMirror = (*RedisPresenceRepository)(nil)

// presence key: duochat:presence:<user>
// Value: the time the user was last seen online, TTL bounds how long a
// crashed process can leave a user marked online.
func presenceKey(userID string) string { return "duochat:presence:" + userID }

type RedisPresenceRepository struct {
	rdb *redis.Client
}

func NewRedisPresenceRepository(rdb *redis.Client) *RedisPresenceRepository {
	return &RedisPresenceRepository{rdb: rdb}
}

func (rp *RedisPresenceRepository) SetOnline(ctx context.Context, userID string, ttl time.Duration) error {
	err := rp.rdb.Set(ctx, presenceKey(userID), time.Now().UTC().Format(time.RFC3339), ttl).Err()
	return pkgerrors.Wrap(err, "set presence online")
}

func (rp *RedisPresenceRepository) SetOffline(ctx context.Context, userID string) error {
	return pkgerrors.Wrap(rp.rdb.Del(ctx, presenceKey(userID)).Err(), "set presence offline")
}

// LastSeenOnline returns when userID was last marked online, or false when
// the key has expired or was removed.
func (rp *RedisPresenceRepository) LastSeenOnline(ctx context.Context, userID string) (time.Time, bool, error) {
	val, err := rp.rdb.Get(ctx, presenceKey(userID)).Result()
	if pkgerrors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, pkgerrors.Wrap(err, "get presence")
	}
	seen, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, pkgerrors.Wrap(err, "parse presence")
	}
	return seen, true, nil
}
