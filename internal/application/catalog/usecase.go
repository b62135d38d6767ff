// Package catalog manages the SKU catalog: products, their cost components
// and their per-channel price lists.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/pricing"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// CatalogUseCase CRUD use cases for products, cost components and prices.
type CatalogUseCase struct {
	products   repository.ProductRepository
	components repository.CostComponentRepository
	prices     repository.PriceConfigRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(
	products repository.ProductRepository,
	components repository.CostComponentRepository,
	prices repository.PriceConfigRepository,
) *CatalogUseCase {
	return &CatalogUseCase{products: products, components: components, prices: prices}
}

// CreateProduct registers a new SKU.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.products.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		VolumeML:    in.VolumeML,
		UnitsPerBox: in.UnitsPerBox,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct fetches one product. Returns (nil, nil) when absent.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// UpdateProduct applies a partial update. SKU is immutable.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.VolumeML != nil {
		if *in.VolumeML < 1 {
			return nil, domain.ErrInvalidInput
		}
		product.VolumeML = *in.VolumeML
	}
	if in.UnitsPerBox != nil {
		if *in.UnitsPerBox < 1 {
			return nil, domain.ErrInvalidInput
		}
		product.UnitsPerBox = *in.UnitsPerBox
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts returns products with pagination.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.products.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

// DeleteProduct removes a product.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// AddCostComponent adds one cost line to a product.
func (uc *CatalogUseCase) AddCostComponent(ctx context.Context, productID string, in dto.CreateCostComponentRequest) (*dto.CostComponentResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	component := &entity.CostComponent{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Name:        in.Name,
		CostPerUnit: in.CostPerUnit,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.components.Create(ctx, component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// UpdateCostComponent applies a partial update to a cost line. Deactivating
// a line removes it from future calculations without losing history.
func (uc *CatalogUseCase) UpdateCostComponent(ctx context.Context, id string, in dto.UpdateCostComponentRequest) (*dto.CostComponentResponse, error) {
	component, err := uc.components.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	if in.Name != nil {
		component.Name = *in.Name
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		component.CostPerUnit = *in.CostPerUnit
	}
	if in.IsActive != nil {
		component.IsActive = *in.IsActive
	}
	component.UpdatedAt = time.Now()
	if err := uc.components.Update(ctx, component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// ListCostComponents returns all cost lines of a product.
func (uc *CatalogUseCase) ListCostComponents(ctx context.Context, productID string) ([]*dto.CostComponentResponse, error) {
	components, err := uc.components.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CostComponentResponse, len(components))
	for i, c := range components {
		out[i] = toComponentResponse(c)
	}
	return out, nil
}

// DeleteCostComponent removes a cost line.
func (uc *CatalogUseCase) DeleteCostComponent(ctx context.Context, id string) error {
	return uc.components.Delete(ctx, id)
}

// SetPrice activates a new price for (product, channel key), replacing the
// previous active row.
func (uc *CatalogUseCase) SetPrice(ctx context.Context, productID string, in dto.SetPriceRequest) (*dto.PriceConfigResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.PricePerBox.IsNegative() || in.PricePerBox.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !pricing.PriceChannelKey(in.ChannelKey).Valid() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	config := &entity.PriceConfig{
		ID:          uuid.New().String(),
		ProductID:   productID,
		ChannelKey:  pricing.PriceChannelKey(in.ChannelKey),
		PricePerBox: in.PricePerBox,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.prices.Create(ctx, config); err != nil {
		return nil, err
	}
	return toPriceResponse(config), nil
}

// ListPrices returns all price rows of a product, active and historical.
func (uc *CatalogUseCase) ListPrices(ctx context.Context, productID string) ([]*dto.PriceConfigResponse, error) {
	configs, err := uc.prices.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PriceConfigResponse, len(configs))
	for i, pc := range configs {
		out[i] = toPriceResponse(pc)
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		VolumeML:    p.VolumeML,
		UnitsPerBox: p.UnitsPerBox,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toComponentResponse(c *entity.CostComponent) *dto.CostComponentResponse {
	return &dto.CostComponentResponse{
		ID:          c.ID,
		ProductID:   c.ProductID,
		Name:        c.Name,
		CostPerUnit: c.CostPerUnit,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPriceResponse(pc *entity.PriceConfig) *dto.PriceConfigResponse {
	return &dto.PriceConfigResponse{
		ID:          pc.ID,
		ProductID:   pc.ProductID,
		ChannelKey:  string(pc.ChannelKey),
		PricePerBox: pc.PricePerBox,
		IsActive:    pc.IsActive,
		CreatedAt:   pc.CreatedAt,
	}
}
