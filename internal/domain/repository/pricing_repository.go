package repository

import (
	"context"

	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// BusinessRuleRepository defines the persistence port for BusinessRule.
type BusinessRuleRepository interface {
	Upsert(ctx context.Context, rule *entity.BusinessRule) error
	// ListActive returns the active rules for one (volume, channel) pair in a
	// single batch. Absent kinds are simply missing from the result.
	ListActive(ctx context.Context, volumeML int, channel pricing.Channel) ([]*entity.BusinessRule, error)
	List(ctx context.Context, limit, offset int) ([]*entity.BusinessRule, error)
	Delete(ctx context.Context, id string) error
}

// PriceConfigRepository defines the persistence port for PriceConfig.
type PriceConfigRepository interface {
	// Create inserts a new active row and deactivates any previous active row
	// for the same (product, channel key).
	Create(ctx context.Context, config *entity.PriceConfig) error
	// GetActive returns the single active row for (product, channel key), or
	// (nil, nil) when none exists.
	GetActive(ctx context.Context, productID string, key pricing.PriceChannelKey) (*entity.PriceConfig, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.PriceConfig, error)
	Deactivate(ctx context.Context, id string) error
}

// DeliveryFeeSlabRepository defines the persistence port for DeliveryFeeSlab.
type DeliveryFeeSlabRepository interface {
	Create(ctx context.Context, slab *entity.DeliveryFeeSlab) error
	// ListActiveByChannel returns active slabs in stable insertion order
	// (created_at, id ascending); slab selection depends on that order.
	ListActiveByChannel(ctx context.Context, channel pricing.Channel) ([]*entity.DeliveryFeeSlab, error)
	List(ctx context.Context, limit, offset int) ([]*entity.DeliveryFeeSlab, error)
	Delete(ctx context.Context, id string) error
}
