package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inventory_backend/internal/feature/users/domain/entity"
	"inventory_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production configuration so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Email:     "test@example.com",
			Password:  "hashed_password",
			FirstName: "Test",
			LastName:  "User",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email yields ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		first := &entity.User{Email: "duplicate@example.com", Password: "hash1"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Email: "duplicate@example.com", Password: "hash2"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := &entity.User{Email: "find@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := &entity.User{Email: "findbyid@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_Update(t *testing.T) {
	t.Run("update persists fields and refreshes UpdatedAt", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{Email: "update@example.com", Password: "hash", FirstName: "Old"}
		require.NoError(t, repo.Create(context.Background(), user))
		createdAt := user.CreatedAt

		user.FirstName = "New"
		require.NoError(t, repo.Update(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", found.FirstName, "first name was not persisted")
		assert.Equal(t, createdAt.Unix(), found.CreatedAt.Unix(), "CreatedAt must not change on update")
		assert.False(t, found.UpdatedAt.Before(found.CreatedAt), "UpdatedAt should be refreshed")
	})
}
