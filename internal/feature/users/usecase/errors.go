// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is already taken.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrForbidden is returned when the acting user is not entitled to the target record.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingCredentials is returned when the email or password is empty on registration.
	ErrMissingCredentials = errors.New("email and password are required")
)
