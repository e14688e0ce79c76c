package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"inventory_backend/internal/feature/auth/domain/entity"
	userentity "inventory_backend/internal/feature/users/domain/entity"
)

// tokenBytes is the number of random bytes in a token value (64 hex characters).
const tokenBytes = 32

// UserFinder resolves users for credential verification.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserFinder interface {
	// FindByEmail retrieves a user matching the specified email address.
	// It returns an error if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*userentity.User, error)
}

// authUsecase implements token issuance and verification.
type authUsecase struct {
	users  UserFinder
	tokens TokenRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserFinder, tokens TokenRepository) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// IssueToken exchanges credentials for the user's bearer token.
// It verifies the email and password, then returns the existing token or
// lazily creates one if the user has never been issued a token.
// To mitigate timing attacks, the bcrypt comparison runs even when the email
// is unknown.
func (u *authUsecase) IssueToken(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always executes.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	return u.EnsureToken(ctx, user.ID)
}

// EnsureToken returns the token bound to userID, creating it on first use.
// The user_id uniqueness constraint makes concurrent first issuances safe: the
// loser of the race re-reads the winner's token instead of minting a second one.
func (u *authUsecase) EnsureToken(ctx context.Context, userID uint) (string, error) {
	existing, err := u.tokens.FindByUserID(ctx, userID)
	if err == nil {
		return existing.Value, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return "", err
	}

	value, err := newTokenValue()
	if err != nil {
		return "", err
	}
	token := &entity.Token{Value: value, UserID: userID}
	if err := u.tokens.Create(ctx, token); err != nil {
		if errors.Is(err, ErrTokenAlreadyIssued) {
			winner, findErr := u.tokens.FindByUserID(ctx, userID)
			if findErr != nil {
				return "", findErr
			}
			return winner.Value, nil
		}
		return "", err
	}
	return token.Value, nil
}

// Authenticate resolves a presented bearer token to a user ID.
// It returns ErrInvalidToken for any value that was never issued.
func (u *authUsecase) Authenticate(ctx context.Context, value string) (uint, error) {
	if value == "" {
		return 0, ErrInvalidToken
	}
	token, err := u.tokens.FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}
	return token.UserID, nil
}

// newTokenValue generates a cryptographically random 64-character hex token.
func newTokenValue() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
