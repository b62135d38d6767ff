package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to register a SKU.
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	VolumeML    int    `json:"volume_ml" validate:"required,min=1"`
	UnitsPerBox int    `json:"units_per_box" validate:"required,min=1"`
}

// UpdateProductRequest partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	VolumeML    *int    `json:"volume_ml" validate:"omitempty,min=1"`
	UnitsPerBox *int    `json:"units_per_box" validate:"omitempty,min=1"`
	IsActive    *bool   `json:"is_active"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	VolumeML    int       `json:"volume_ml"`
	UnitsPerBox int       `json:"units_per_box"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCostComponentRequest input to add a cost line to a product.
type CreateCostComponentRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit" validate:"required"`
}

// UpdateCostComponentRequest partial update of a cost line.
type UpdateCostComponentRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
	IsActive    *bool            `json:"is_active"`
}

// CostComponentResponse cost line output.
type CostComponentResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SetPriceRequest input to activate a new price for (product, channel key).
type SetPriceRequest struct {
	ChannelKey  string          `json:"channel_key" validate:"required,oneof=end_consumer_delivery plant_pickup distributor bulk custom"`
	PricePerBox decimal.Decimal `json:"price_per_box" validate:"required"`
}

// PriceConfigResponse price row output.
type PriceConfigResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ChannelKey  string          `json:"channel_key"`
	PricePerBox decimal.Decimal `json:"price_per_box"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
