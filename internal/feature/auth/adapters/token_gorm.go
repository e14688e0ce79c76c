// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inventory_backend/internal/feature/auth/domain/entity"
	"inventory_backend/internal/feature/auth/usecase"
	"inventory_backend/internal/shared/dberr"
)

// tokenGorm is a GORM implementation of the TokenRepository interface.
type tokenGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenGorm implements TokenRepository.
var _ usecase.TokenRepository = (*tokenGorm)(nil)

// NewTokenGorm creates a new instance of tokenGorm.
func NewTokenGorm(db *gorm.DB) *tokenGorm {
	return &tokenGorm{db: db}
}

// Create persists a new token. The unique index on user_id enforces the 1:1
// binding; a violation is mapped to usecase.ErrTokenAlreadyIssued.
func (r *tokenGorm) Create(ctx context.Context, token *entity.Token) error {
	model := TokenModelFromEntity(token)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return usecase.ErrTokenAlreadyIssued
		}
		return err
	}
	token.CreatedAt = model.CreatedAt
	return nil
}

// FindByValue retrieves a token by its opaque value.
func (r *tokenGorm) FindByValue(ctx context.Context, value string) (*entity.Token, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("value = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindByUserID retrieves the token issued to the given user.
func (r *tokenGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Token, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}
