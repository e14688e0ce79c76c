package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"inventory_backend/internal/feature/users/domain/entity"
	"inventory_backend/internal/shared/authz"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user and refreshes its UpdatedAt.
	Update(ctx context.Context, user *entity.User) error
}

// Patch carries the client-mutable user fields. Nil means "leave unchanged".
// Email and the server-set timestamps are deliberately absent: they are never
// client-mutable, and the transport layer rejects any attempt to send them.
type Patch struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// userUsecase implements the identity business logic.
type userUsecase struct {
	users  UserRepository
	policy authz.Policy
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository, policy authz.Policy) *userUsecase {
	return &userUsecase{users: users, policy: policy}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a bcrypt-hashed password.
// The duplicate check runs before hashing; the unique index on email is the
// race-safe backstop, so a concurrent insert still surfaces as ErrEmailAlreadyExists.
func (u *userUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user record identified by id, subject to the authorization policy.
// The lookup runs first so a missing record yields ErrUserNotFound before any
// authorization decision.
func (u *userUsecase) Get(ctx context.Context, actor authz.Actor, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.policy.DecideUser(actor, authz.OpRead, user) != authz.Allow {
		return nil, ErrForbidden
	}
	return user, nil
}

// Update applies a patch to the user identified by id, subject to the
// authorization policy. A present password is re-hashed before persisting.
// UpdatedAt is refreshed on every successful call, even for an empty patch.
func (u *userUsecase) Update(ctx context.Context, actor authz.Actor, id uint, patch Patch) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.policy.DecideUser(actor, authz.OpUpdate, user) != authz.Allow {
		return nil, ErrForbidden
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
