// Package router builds the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	tokenhandler "inventory_backend/internal/feature/auth/transport/handler"
	producthandler "inventory_backend/internal/feature/products/transport/handler"
	userhandler "inventory_backend/internal/feature/users/transport/handler"
	"inventory_backend/internal/platform/bearer"
	platformhandler "inventory_backend/internal/platform/http/handler"
	"inventory_backend/internal/platform/http/middleware"
)

// NewRouter assembles the explicit route table. Every (method, path) pair is
// mapped here; a request with an unmapped method on a mapped path is rejected
// with 405 by the engine rather than falling through to a handler.
func NewRouter(
	userH *userhandler.UserHandler,
	tokenH *tokenhandler.TokenHandler,
	productH *producthandler.ProductHandler,
	healthH *platformhandler.HealthHandler,
	auth bearer.TokenAuthenticator,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(cors.Default())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Liveness probe. GET only; the strict request-shape checks live in the handler.
	r.GET("/healthz", healthH.Check)

	// No authentication required.
	r.POST("/v1/user/", userH.Register)
	r.POST("/v1/token/", tokenH.Issue)
	r.GET("/v1/product/:id/", productH.Get)

	// Bearer token required.
	authRequired := bearer.AuthRequired(auth)

	r.GET("/v1/user/self/", authRequired, userH.GetSelf)
	r.PUT("/v1/user/self/", authRequired, userH.UpdateSelf)
	r.PATCH("/v1/user/self/", authRequired, userH.UpdateSelf)

	r.GET("/v1/user/:id/", authRequired, userH.GetByID)
	r.PUT("/v1/user/:id/", authRequired, userH.UpdateByID)
	r.PATCH("/v1/user/:id/", authRequired, userH.UpdateByID)

	r.POST("/v1/product/", authRequired, productH.Create)
	r.GET("/v1/product/", authRequired, productH.List)
	r.PUT("/v1/product/:id/", authRequired, productH.Update)
	r.PATCH("/v1/product/:id/", authRequired, productH.Update)
	r.DELETE("/v1/product/:id/", authRequired, productH.Delete)

	return r
}
