// Package db opens the Postgres connection and runs schema migration.
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "inventory_backend/internal/feature/auth/adapters"
	productentity "inventory_backend/internal/feature/products/domain/entity"
	userentity "inventory_backend/internal/feature/users/domain/entity"
	"inventory_backend/internal/platform/health"
)

// OpenDB connects to Postgres using the DB_* environment variables and
// migrates the schema. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates or updates the tables for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userentity.User{},
		&productentity.Product{},
		&authadapters.TokenModel{},
		&health.CheckModel{},
	)
}
