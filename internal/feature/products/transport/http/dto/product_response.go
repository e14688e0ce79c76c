package dto

import (
	"time"

	"inventory_backend/internal/feature/products/domain/entity"
)

// ProductResponse is the outbound representation of a product record.
type ProductResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	SKU          string    `json:"sku"`
	Manufacturer string    `json:"manufacturer"`
	Quantity     int       `json:"quantity"`
	OwnerID      uint      `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewProductResponse maps a product entity to its outbound representation.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		Manufacturer: p.Manufacturer,
		Quantity:     p.Quantity,
		OwnerID:      p.OwnerID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProductListResponse maps a slice of product entities.
func NewProductListResponse(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = NewProductResponse(&products[i])
	}
	return out
}
