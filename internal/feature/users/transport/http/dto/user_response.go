package dto

import (
	"time"

	"inventory_backend/internal/feature/users/domain/entity"
)

// UserResponse is the outbound representation of a user record.
// The password hash is deliberately absent and must never be added.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse is the body returned on successful registration.
// It embeds the user representation plus the issued bearer token.
type RegisterResponse struct {
	UserResponse
	Token string `json:"token"`
}

// NewUserResponse maps a user entity to its outbound representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
