// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when the email or password is incorrect on a token exchange.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when a token cannot be found by value or user.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenAlreadyIssued is returned when a concurrent issuance already created the user's token.
	ErrTokenAlreadyIssued = errors.New("token already issued for user")

	// ErrInvalidToken is returned when a presented bearer token does not match any issued token.
	ErrInvalidToken = errors.New("invalid token")
)
