package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"inventory_backend/internal/app/di"
	"inventory_backend/internal/app/router"
	tokenhandler "inventory_backend/internal/feature/auth/transport/handler"
	authusecase "inventory_backend/internal/feature/auth/usecase"
	productadapters "inventory_backend/internal/feature/products/adapters"
	producthandler "inventory_backend/internal/feature/products/transport/handler"
	productusecase "inventory_backend/internal/feature/products/usecase"
	useradapters "inventory_backend/internal/feature/users/adapters"
	userhandler "inventory_backend/internal/feature/users/transport/handler"
	userusecase "inventory_backend/internal/feature/users/usecase"
	infradb "inventory_backend/internal/platform/db"
	"inventory_backend/internal/platform/health"
	platformhandler "inventory_backend/internal/platform/http/handler"
	infraredis "inventory_backend/internal/platform/redis"
	"inventory_backend/internal/shared/authz"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis (optional; token storage falls back to the relational store)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("redis unavailable, storing tokens in the relational store")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Repositories
	userRepo := useradapters.NewUserGorm(db)
	productRepo := productadapters.NewProductGorm(db)
	tokenRepo := di.NewTokenRepository(rdb, db)

	// Policy and usecases
	policy := authz.Policy{}
	userUC := userusecase.NewUserUsecase(userRepo, policy)
	productUC := productusecase.NewProductUsecase(productRepo, policy)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo)

	// Handlers
	userH := userhandler.NewUserHandler(userUC, authUC)
	tokenH := tokenhandler.NewTokenHandler(authUC)
	productH := producthandler.NewProductHandler(productUC)
	healthH := platformhandler.NewHealthHandler(health.NewRecorder(db))

	r := router.NewRouter(userH, tokenH, productH, healthH, authUC)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
