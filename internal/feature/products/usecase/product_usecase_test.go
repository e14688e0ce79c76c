package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory_backend/internal/feature/products/domain/entity"
	"inventory_backend/internal/shared/authz"
)

// mockProductRepository is a mock implementation of the ProductRepository interface.
type mockProductRepository struct {
	CreateFunc      func(ctx context.Context, product *entity.Product) error
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Product, error)
	FindByOwnerFunc func(ctx context.Context, ownerID uint) ([]entity.Product, error)
	ExistsBySKUFunc func(ctx context.Context, sku string, excludeID uint) (bool, error)
	UpdateFunc      func(ctx context.Context, product *entity.Product) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	product.ID = 1 // Default: assign an ID like the database would
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrProductNotFound // Default: not found
}

func (m *mockProductRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil // Default: empty inventory
}

func (m *mockProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID uint) (bool, error) {
	if m.ExistsBySKUFunc != nil {
		return m.ExistsBySKUFunc(ctx, sku, excludeID)
	}
	return false, nil // Default: SKU is free
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil // Default: success
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil // Default: success
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProductUsecase_Create(t *testing.T) {
	actor := authz.Actor{ID: 7}

	t.Run("owner is forced to the acting user", func(t *testing.T) {
		var created *entity.Product
		repo := &mockProductRepository{
			CreateFunc: func(ctx context.Context, product *entity.Product) error {
				created = product
				return nil
			},
		}
		uc := NewProductUsecase(repo, authz.Policy{})

		product, err := uc.Create(context.Background(), actor, Input{Name: "Widget", SKU: "W-1", Quantity: 3})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, actor.ID, created.OwnerID)
		assert.Equal(t, "Widget", product.Name)
	})

	t.Run("anonymous actor cannot create", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			CreateFunc: func(ctx context.Context, product *entity.Product) error {
				t.Fatal("store must not be reached without an actor")
				return nil
			},
		}, authz.Policy{})

		_, err := uc.Create(context.Background(), authz.Anonymous, Input{Name: "Widget", SKU: "W-1"})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("negative quantity is rejected before any store call", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			ExistsBySKUFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
				t.Fatal("SKU check must not run for an invalid quantity")
				return false, nil
			},
		}, authz.Policy{})

		_, err := uc.Create(context.Background(), actor, Input{Name: "Widget", SKU: "W-1", Quantity: -1})

		assert.ErrorIs(t, err, ErrNegativeQuantity)
	})

	t.Run("zero quantity is valid", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{}, authz.Policy{})

		_, err := uc.Create(context.Background(), actor, Input{Name: "Widget", SKU: "W-1", Quantity: 0})

		assert.NoError(t, err)
	})

	t.Run("taken SKU is rejected", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			ExistsBySKUFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
				return sku == "TAKEN", nil
			},
		}, authz.Policy{})

		_, err := uc.Create(context.Background(), actor, Input{Name: "Widget", SKU: "TAKEN"})

		assert.ErrorIs(t, err, ErrSKUAlreadyExists)
	})

	t.Run("concurrent insert losing to the unique index surfaces the same error", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			CreateFunc: func(ctx context.Context, product *entity.Product) error {
				return ErrSKUAlreadyExists
			},
		}, authz.Policy{})

		_, err := uc.Create(context.Background(), actor, Input{Name: "Widget", SKU: "RACED"})

		assert.ErrorIs(t, err, ErrSKUAlreadyExists)
	})
}

func TestProductUsecase_Get(t *testing.T) {
	t.Run("products are readable without an actor", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) {
				return &entity.Product{ID: id, Name: "Public Widget", OwnerID: 99}, nil
			},
		}, authz.Policy{})

		product, err := uc.Get(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "Public Widget", product.Name)
	})

	t.Run("missing product yields ErrProductNotFound", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{}, authz.Policy{})

		_, err := uc.Get(context.Background(), 404)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductUsecase_ListOwned(t *testing.T) {
	t.Run("returns only the actor's products", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByOwnerFunc: func(ctx context.Context, ownerID uint) ([]entity.Product, error) {
				assert.Equal(t, uint(7), ownerID)
				return []entity.Product{{ID: 1, OwnerID: 7}, {ID: 2, OwnerID: 7}}, nil
			},
		}, authz.Policy{})

		products, err := uc.ListOwned(context.Background(), authz.Actor{ID: 7})

		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("anonymous actor is refused", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{}, authz.Policy{})

		_, err := uc.ListOwned(context.Background(), authz.Anonymous)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestProductUsecase_Update(t *testing.T) {
	owner := authz.Actor{ID: 7}

	existing := func() *entity.Product {
		return &entity.Product{ID: 1, Name: "Widget", SKU: "W-1", Quantity: 5, OwnerID: 7}
	}

	t.Run("partial patch touches only the supplied fields", func(t *testing.T) {
		var saved *entity.Product
		repo := &mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing(), nil },
			UpdateFunc: func(ctx context.Context, product *entity.Product) error {
				saved = product
				return nil
			},
		}
		uc := NewProductUsecase(repo, authz.Policy{})

		product, err := uc.Update(context.Background(), owner, 1, Patch{Quantity: intPtr(9)})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, 9, product.Quantity)
		assert.Equal(t, "Widget", product.Name, "unpatched fields keep their values")
		assert.Equal(t, "W-1", product.SKU)
	})

	t.Run("missing product wins over forbidden", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{}, authz.Policy{})

		_, err := uc.Update(context.Background(), authz.Actor{ID: 999}, 404, Patch{Name: strPtr("X")})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("non-owner is refused before any write", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing(), nil },
			UpdateFunc: func(ctx context.Context, product *entity.Product) error {
				t.Fatal("store must not be written for a non-owner")
				return nil
			},
		}, authz.Policy{})

		_, err := uc.Update(context.Background(), authz.Actor{ID: 999}, 1, Patch{Name: strPtr("X")})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("negative quantity in the patch is rejected", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing(), nil },
		}, authz.Policy{})

		_, err := uc.Update(context.Background(), owner, 1, Patch{Quantity: intPtr(-1)})

		assert.ErrorIs(t, err, ErrNegativeQuantity)
	})

	t.Run("changing the SKU to a taken one is rejected", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing(), nil },
			ExistsBySKUFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
				assert.Equal(t, uint(1), excludeID, "the product's own row must be excluded")
				return true, nil
			},
		}, authz.Policy{})

		_, err := uc.Update(context.Background(), owner, 1, Patch{SKU: strPtr("TAKEN")})

		assert.ErrorIs(t, err, ErrSKUAlreadyExists)
	})

	t.Run("resubmitting the current SKU skips the uniqueness check", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing(), nil },
			ExistsBySKUFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
				t.Fatal("an unchanged SKU must not be re-checked")
				return false, nil
			},
		}, authz.Policy{})

		_, err := uc.Update(context.Background(), owner, 1, Patch{SKU: strPtr("W-1")})

		assert.NoError(t, err)
	})
}

func TestProductUsecase_Delete(t *testing.T) {
	existing := &entity.Product{ID: 1, Name: "Widget", SKU: "W-1", OwnerID: 7}

	t.Run("owner can delete", func(t *testing.T) {
		deleted := uint(0)
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing, nil },
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}, authz.Policy{})

		err := uc.Delete(context.Background(), authz.Actor{ID: 7}, 1)

		require.NoError(t, err)
		assert.Equal(t, uint(1), deleted)
	})

	t.Run("missing product wins over forbidden", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{}, authz.Policy{})

		err := uc.Delete(context.Background(), authz.Actor{ID: 999}, 404)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		uc := NewProductUsecase(&mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Product, error) { return existing, nil },
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("store must not be touched for a non-owner")
				return nil
			},
		}, authz.Policy{})

		err := uc.Delete(context.Background(), authz.Actor{ID: 999}, 1)

		assert.ErrorIs(t, err, ErrForbidden)
	})
}
