// Package usecase implements the business logic for the products feature.
package usecase

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found by ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUAlreadyExists is returned when a create or update would collide with an existing SKU.
	ErrSKUAlreadyExists = errors.New("sku must be unique")

	// ErrNegativeQuantity is returned when a create or update would set a quantity below zero.
	ErrNegativeQuantity = errors.New("quantity cannot be less than 0")

	// ErrForbidden is returned when the acting user is not the owner of the target product.
	ErrForbidden = errors.New("forbidden")
)
