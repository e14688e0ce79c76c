// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the system.
// It carries the credential hash and the profile fields exposed over the API.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercase.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This must never hold a plaintext password and is never serialized outbound.
	Password string `gorm:"size:255;not null"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:50"`

	// LastName is the user's family name.
	LastName string `gorm:"size:50"`

	// CreatedAt is the timestamp when the user was created. Server-set.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated. Server-set.
	UpdatedAt time.Time
}
