package database

import (
	"context"
	"duoChat/configs"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses redis.url and checks the server answers.
func NewRedisClient(config *configs.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(config.Viper.GetString("redis.url"))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, pkgerrors.Wrap(err, "failed to ping redis")
	}
	return client, nil
}
