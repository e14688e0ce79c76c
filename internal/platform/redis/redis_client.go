// Package redis constructs the shared Redis client.
package redis

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance named by the REDIS_HOST and
// REDIS_PORT environment variables and verifies the connection with a ping.
// Callers treat Redis as optional and fall back to the relational store when
// this returns an error.
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")
	password := os.Getenv("REDIS_PASSWORD")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("redis connection established", "address", addr)
	return rdb, nil
}
