// Package handler provides HTTP handlers for the products feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory_backend/internal/feature/products/domain/entity"
	"inventory_backend/internal/feature/products/transport/http/dto"
	"inventory_backend/internal/feature/products/usecase"
	"inventory_backend/internal/platform/bearer"
	"inventory_backend/internal/shared/authz"
)

// ProductUsecase defines the inventory operations consumed by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	// Create persists a new product owned by the acting user.
	Create(ctx context.Context, actor authz.Actor, in usecase.Input) (*entity.Product, error)
	// Get returns a product by ID; products are publicly readable.
	Get(ctx context.Context, id uint) (*entity.Product, error)
	// ListOwned returns the acting user's products.
	ListOwned(ctx context.Context, actor authz.Actor) ([]entity.Product, error)
	// Update applies a partial update, policy-checked against the actor.
	Update(ctx context.Context, actor authz.Actor, id uint, patch usecase.Patch) (*entity.Product, error)
	// Delete removes a product, policy-checked against the actor.
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

// ProductHandler handles HTTP requests for product records.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create handles POST /v1/product/.
// The body supplies the product fields; the owner is forced server-side to the
// acting user regardless of anything the client sends.
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), actor, usecase.Input{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	})
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	slog.Info("product created", "product_id", product.ID, "owner_id", actor.ID, "sku", product.SKU)
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// Get handles GET /v1/product/:id/. No authentication: products are publicly readable.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// List handles GET /v1/product/ and returns the acting user's products.
func (h *ProductHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	products, err := h.products.ListOwned(c.Request.Context(), actor)
	if err != nil {
		h.writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// Update handles PUT and PATCH on /v1/product/:id/.
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	product, err := h.products.Update(c.Request.Context(), actor, id, usecase.Patch{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	})
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	slog.Info("product updated", "product_id", product.ID, "owner_id", actor.ID)
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Delete handles DELETE /v1/product/:id/ and returns 204 with an empty body.
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), actor, id); err != nil {
		h.writeProductError(c, err)
		return
	}

	slog.Info("product deleted", "product_id", id, "owner_id", actor.ID)
	c.Status(http.StatusNoContent)
}

// requireActor extracts the authenticated actor set by the bearer middleware.
func requireActor(c *gin.Context) (authz.Actor, bool) {
	id, ok := bearer.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return authz.Anonymous, false
	}
	return authz.Actor{ID: id}, true
}

// parseID parses the :id route parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

// writeProductError maps usecase errors to HTTP statuses. Messages for the
// validation failures match the API contract verbatim.
func (h *ProductHandler) writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, usecase.ErrNegativeQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be less than 0."})
	case errors.Is(err, usecase.ErrSKUAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "SKU must be unique."})
	default:
		slog.Error("product operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
