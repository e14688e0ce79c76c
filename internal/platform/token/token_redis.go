// Package token provides a Redis-backed implementation of the token repository.
package token

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"inventory_backend/internal/feature/auth/domain/entity"
	"inventory_backend/internal/feature/auth/usecase"
)

// TokenRedis implements usecase.TokenRepository using Redis.
// Tokens are stored without a TTL: the credential is reused for the lifetime
// of the account, not rotated per login.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure TokenRedis implements TokenRepository.
var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	if prefix == "" {
		prefix = "token"
	}
	return &TokenRedis{client: client, prefix: prefix}
}

// tokenKey returns the Redis key holding a token record.
func (r *TokenRedis) tokenKey(value string) string {
	return fmt.Sprintf("%s:%s", r.prefix, value)
}

// userTokenKey returns the Redis key mapping a user to their token value.
func (r *TokenRedis) userTokenKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Create persists a new token. SETNX on the per-user key enforces the 1:1
// binding under concurrent issuance; the loser gets ErrTokenAlreadyIssued.
//
// The token record is written before the user mapping so the mapping can never
// point at a missing record. When the claim fails the record is removed again;
// an unclaimed record is harmless (its value was never handed out) but must not
// linger once the outcome is known.
func (r *TokenRedis) Create(ctx context.Context, token *entity.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := r.client.Set(ctx, r.tokenKey(token.Value), data, 0).Err(); err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, r.userTokenKey(token.UserID), token.Value, 0).Result()
	if err != nil || !ok {
		r.client.Del(ctx, r.tokenKey(token.Value))
		if err != nil {
			return err
		}
		return usecase.ErrTokenAlreadyIssued
	}
	return nil
}

// FindByValue retrieves a token by its opaque value.
func (r *TokenRedis) FindByValue(ctx context.Context, value string) (*entity.Token, error) {
	data, err := r.client.Get(ctx, r.tokenKey(value)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// FindByUserID retrieves the token issued to the given user.
func (r *TokenRedis) FindByUserID(ctx context.Context, userID uint) (*entity.Token, error) {
	value, err := r.client.Get(ctx, r.userTokenKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return r.FindByValue(ctx, value)
}
