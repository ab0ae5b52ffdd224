package database

import (
	"context"
	"fmt"
	"time"

	"tcgurt/config"

	"github.com/redis/go-redis/v9"
)

func InitRedis(ctx context.Context, config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}
