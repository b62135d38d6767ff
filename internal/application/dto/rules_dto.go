package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertRuleRequest input to set one pricing gate. Value zero disables the
// gate, same as deleting the row.
type UpsertRuleRequest struct {
	VolumeML int             `json:"volume_ml" validate:"required,min=1"`
	Channel  string          `json:"channel" validate:"required,oneof=end_consumer distributor bulk custom"`
	Kind     string          `json:"kind" validate:"required,oneof=min_margin_per_bottle min_margin_per_box min_boxes_for_delivery max_delivery_radius_km"`
	Value    decimal.Decimal `json:"value" validate:"required"`
}

// RuleResponse business rule output.
type RuleResponse struct {
	ID        string          `json:"id"`
	VolumeML  int             `json:"volume_ml"`
	Channel   string          `json:"channel"`
	Kind      string          `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	IsActive  bool            `json:"is_active"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateSlabRequest input to add a delivery fee slab.
type CreateSlabRequest struct {
	Channel       string          `json:"channel" validate:"required,oneof=end_consumer distributor bulk custom"`
	MinDistanceKm float64         `json:"min_distance_km" validate:"min=0"`
	MaxDistanceKm float64         `json:"max_distance_km" validate:"required,gtfield=MinDistanceKm"`
	Fee           decimal.Decimal `json:"fee" validate:"required"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" validate:"required"`
}

// SlabResponse delivery fee slab output.
type SlabResponse struct {
	ID            string          `json:"id"`
	Channel       string          `json:"channel"`
	MinDistanceKm float64         `json:"min_distance_km"`
	MaxDistanceKm float64         `json:"max_distance_km"`
	Fee           decimal.Decimal `json:"fee"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}
