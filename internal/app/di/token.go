// Package di wires implementation choices that depend on the runtime environment.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "inventory_backend/internal/feature/auth/adapters"
	"inventory_backend/internal/feature/auth/usecase"
	"inventory_backend/internal/platform/token"
)

// NewTokenRepository creates a TokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational store.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.TokenRepository {
	if rdb != nil {
		return token.NewTokenRedis(rdb, "token")
	}
	return authadapters.NewTokenGorm(db)
}
