// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Token is an opaque bearer credential bound 1:1 to a user.
// It is created lazily on first issuance (registration) and reused on every
// subsequent credential exchange; it is not rotated per login.
type Token struct {
	Value     string    // Token value presented by clients (64-character hex string)
	UserID    uint      // Associated user ID (exactly one token per user)
	CreatedAt time.Time // Issuance time
}
