// Package dto defines data transfer objects for the products feature's HTTP transport layer.
package dto

// CreateProductReq represents the request body for POST /v1/product/.
// The owner is never read from the body; it is forced to the acting user.
// Quantity defaults to zero when absent; negative values are rejected by the
// usecase so the error message stays consistent across create and update.
type CreateProductReq struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	SKU          string `json:"sku" binding:"required"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity"`
}

// UpdateProductReq represents the request body for PUT/PATCH on a product.
// Nil means "leave unchanged". Owner and timestamps are not represented:
// they are server-controlled and silently ignored if sent.
type UpdateProductReq struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	SKU          *string `json:"sku"`
	Manufacturer *string `json:"manufacturer"`
	Quantity     *int    `json:"quantity"`
}
