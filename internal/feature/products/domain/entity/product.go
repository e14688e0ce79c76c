// Package entity defines the domain entities for the products feature.
package entity

import (
	"time"

	usersentity "inventory_backend/internal/feature/users/domain/entity"
)

// Product represents a single inventory record owned by a user.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint `gorm:"primaryKey"`

	// Name is the display name of the product.
	Name string `gorm:"size:100;not null"`

	// Description is a free-form description of the product.
	Description string `gorm:"type:text"`

	// SKU is the stock keeping unit. It must be unique across all products.
	SKU string `gorm:"uniqueIndex;size:100;not null"`

	// Manufacturer is the name of the product's manufacturer.
	Manufacturer string `gorm:"size:100"`

	// Quantity is the on-hand count. It is never negative.
	Quantity int `gorm:"not null;default:0"`

	// OwnerID references the user who created the product.
	// It is set by the server on creation and immutable thereafter.
	// Deleting the owner cascades to their products.
	OwnerID uint             `gorm:"index;not null"`
	Owner   usersentity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the product was created. Server-set.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the product was last updated. Server-set.
	UpdatedAt time.Time
}
