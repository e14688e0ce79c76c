package adapters

import (
	"time"

	"inventory_backend/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the auth_tokens table.
type TokenModel struct {
	Value     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"uniqueIndex;not null"` // one token per user
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "auth_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.Token {
	return &entity.Token{
		Value:     m.Value,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.Token) *TokenModel {
	return &TokenModel{
		Value:     t.Value,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}
