package usecase

import (
	"context"

	"inventory_backend/internal/feature/products/domain/entity"
	"inventory_backend/internal/shared/authz"
)

// ProductRepository abstracts the persistence layer for product entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// Create persists a new product to the storage.
	// It returns ErrSKUAlreadyExists if a product with the same SKU already exists.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product matching the specified ID.
	// It returns ErrProductNotFound if the product does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindByOwner retrieves all products owned by the given user, oldest first.
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error)

	// ExistsBySKU reports whether a product other than excludeID carries the given SKU.
	ExistsBySKU(ctx context.Context, sku string, excludeID uint) (bool, error)

	// Update persists changes to an existing product and refreshes its UpdatedAt.
	// It returns ErrSKUAlreadyExists on a SKU collision.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given ID.
	Delete(ctx context.Context, id uint) error
}

// Input carries the client-supplied fields for product creation.
// The owner is deliberately absent: it is always forced to the acting user.
type Input struct {
	Name         string
	Description  string
	SKU          string
	Manufacturer string
	Quantity     int
}

// Patch carries the client-mutable product fields. Nil means "leave unchanged".
type Patch struct {
	Name         *string
	Description  *string
	SKU          *string
	Manufacturer *string
	Quantity     *int
}

// productUsecase implements the inventory business logic.
type productUsecase struct {
	products ProductRepository
	policy   authz.Policy
}

// NewProductUsecase creates a new instance of productUsecase.
func NewProductUsecase(products ProductRepository, policy authz.Policy) *productUsecase {
	return &productUsecase{products: products, policy: policy}
}

// Create persists a new product owned by the acting user.
// The SKU pre-check is backstopped by the unique index, so a concurrent insert
// with the same SKU still surfaces as ErrSKUAlreadyExists.
func (u *productUsecase) Create(ctx context.Context, actor authz.Actor, in Input) (*entity.Product, error) {
	if u.policy.DecideProduct(actor, authz.OpCreate, nil) != authz.Allow {
		return nil, ErrForbidden
	}
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	taken, err := u.products.ExistsBySKU(ctx, in.SKU, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSKUAlreadyExists
	}

	product := &entity.Product{
		Name:         in.Name,
		Description:  in.Description,
		SKU:          in.SKU,
		Manufacturer: in.Manufacturer,
		Quantity:     in.Quantity,
		OwnerID:      actor.ID,
	}
	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a product by ID. Products are publicly readable, so no actor is required.
func (u *productUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// ListOwned returns all products owned by the acting user.
func (u *productUsecase) ListOwned(ctx context.Context, actor authz.Actor) ([]entity.Product, error) {
	if actor.IsAnonymous() {
		return nil, ErrForbidden
	}
	return u.products.FindByOwner(ctx, actor.ID)
}

// Update applies a partial update to a product. The record is resolved first
// (missing → ErrProductNotFound), then the policy is consulted (non-owner →
// ErrForbidden) before any field is touched or any write is issued. Quantity
// and SKU constraints are re-validated for the fields present in the patch.
func (u *productUsecase) Update(ctx context.Context, actor authz.Actor, id uint, patch Patch) (*entity.Product, error) {
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.policy.DecideProduct(actor, authz.OpUpdate, product) != authz.Allow {
		return nil, ErrForbidden
	}

	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if patch.SKU != nil && *patch.SKU != product.SKU {
		taken, err := u.products.ExistsBySKU(ctx, *patch.SKU, product.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSKUAlreadyExists
		}
		product.SKU = *patch.SKU
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Manufacturer != nil {
		product.Manufacturer = *patch.Manufacturer
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Resolution and policy ordering match Update:
// not-found wins over forbidden, and no unauthorized request reaches the store.
func (u *productUsecase) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u.policy.DecideProduct(actor, authz.OpDelete, product) != authz.Allow {
		return ErrForbidden
	}
	return u.products.Delete(ctx, product.ID)
}
