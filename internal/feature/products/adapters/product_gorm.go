// Package adapters provides repository implementations for the products feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory_backend/internal/feature/products/domain/entity"
	"inventory_backend/internal/feature/products/usecase"
	"inventory_backend/internal/shared/dberr"
)

// productGorm is a GORM implementation of the ProductRepository interface.
type productGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure productGorm implements ProductRepository.
var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm creates a new instance of productGorm.
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// Create persists a new product to the database.
// If a product with the same SKU already exists, it returns usecase.ErrSKUAlreadyExists.
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return usecase.ErrSKUAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a product by ID.
// If the product does not exist, it returns usecase.ErrProductNotFound.
func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByOwner retrieves all products owned by the given user, oldest first.
func (r *productGorm) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsBySKU reports whether a product other than excludeID carries the given SKU.
// Pass excludeID 0 to check against all products.
func (r *productGorm) ExistsBySKU(ctx context.Context, sku string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&entity.Product{}).Where("sku = ?", sku)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all fields of an existing product. GORM refreshes UpdatedAt.
// A SKU collision from the unique index is mapped to usecase.ErrSKUAlreadyExists.
func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return usecase.ErrSKUAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes the product with the given ID. Deleting a missing product is a no-op.
func (r *productGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, id).Error
}
