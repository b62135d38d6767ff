package repository

import (
	"context"

	"github.com/jalveda/ops-api/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product (DIP).
// Getters return (nil, nil) when the row does not exist.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// CostComponentRepository defines the persistence port for CostComponent.
type CostComponentRepository interface {
	Create(ctx context.Context, component *entity.CostComponent) error
	GetByID(ctx context.Context, id string) (*entity.CostComponent, error)
	// ListActiveByProduct returns only active components; the engine sums
	// these for the production cost per bottle.
	ListActiveByProduct(ctx context.Context, productID string) ([]*entity.CostComponent, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.CostComponent, error)
	Update(ctx context.Context, component *entity.CostComponent) error
	Delete(ctx context.Context, id string) error
}
