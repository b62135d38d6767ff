package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// PriceConfig is one active price-list row. Exactly one active row is
// expected per (product, channel key); the engine hard-fails when none
// exists.
type PriceConfig struct {
	ID          string
	ProductID   string
	ChannelKey  pricing.PriceChannelKey
	PricePerBox decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeliveryFeeSlab is an active distance range carrying the fee charged to
// the buyer and the company's own estimated delivery cost. Ranges may
// overlap; the engine keeps the last matching slab in fetch order.
type DeliveryFeeSlab struct {
	ID            string
	Channel       pricing.Channel
	MinDistanceKm float64
	MaxDistanceKm float64
	Fee           decimal.Decimal
	EstimatedCost decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
