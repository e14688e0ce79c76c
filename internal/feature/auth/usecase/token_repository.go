package usecase

import (
	"context"

	"inventory_backend/internal/feature/auth/domain/entity"
)

// TokenRepository abstracts the persistence layer for bearer tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TokenRepository interface {
	// Create persists a new token. It returns ErrTokenAlreadyIssued if the
	// user already holds a token (the binding is strictly 1:1).
	Create(ctx context.Context, token *entity.Token) error

	// FindByValue retrieves a token by its opaque value.
	// It returns ErrTokenNotFound if no such token was issued.
	FindByValue(ctx context.Context, value string) (*entity.Token, error)

	// FindByUserID retrieves the token issued to the given user.
	// It returns ErrTokenNotFound if the user holds no token yet.
	FindByUserID(ctx context.Context, userID uint) (*entity.Token, error)
}
