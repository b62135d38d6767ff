package dto

import "github.com/shopspring/decimal"

// QuoteRequest input of the order profitability calculation.
type QuoteRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Channel      string `json:"channel" validate:"required,oneof=end_consumer distributor bulk custom"`
	Pincode      string `json:"pincode" validate:"omitempty,len=6,numeric"`
	QtyBoxes     int    `json:"qty_boxes" validate:"required,min=1"`
	DeliveryType string `json:"delivery_type" validate:"required,oneof=delivery pickup"`
}

// QuoteResponse is the full verdict of the calculation. Every intermediate
// figure is surfaced so sales can see why an order was flagged.
type QuoteResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	VolumeML    int    `json:"volume_ml"`
	UnitsPerBox int    `json:"units_per_box"`
	Channel     string `json:"channel"`
	ChannelKey  string `json:"channel_key"`
	Pincode     string `json:"pincode,omitempty"`
	QtyBoxes    int    `json:"qty_boxes"`

	ProductionCostPerBottle decimal.Decimal `json:"production_cost_per_bottle"`
	CostPerBox              decimal.Decimal `json:"cost_per_box"`
	EstProductCost          decimal.Decimal `json:"est_product_cost"`

	MinMarginPerBottle  decimal.Decimal `json:"min_margin_per_bottle"`
	MinMarginPerBox     decimal.Decimal `json:"min_margin_per_box"`
	MinBoxesForDelivery int64           `json:"min_boxes_for_delivery"`
	MaxDeliveryRadiusKm float64         `json:"max_delivery_radius_km"`

	RequestedDeliveryType string          `json:"requested_delivery_type"`
	EffectiveDeliveryType string          `json:"effective_delivery_type"`
	DeliveryReason        string          `json:"delivery_reason,omitempty"`
	DistributorID         string          `json:"distributor_id,omitempty"`
	DistributorName       string          `json:"distributor_name,omitempty"`
	DistanceKm            *float64        `json:"distance_km,omitempty"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	EstDeliveryCost       decimal.Decimal `json:"est_delivery_cost"`

	PricePerBox     decimal.Decimal `json:"price_per_box"`
	RevenueProducts decimal.Decimal `json:"revenue_products"`
	RevenueDelivery decimal.Decimal `json:"revenue_delivery"`
	GrossRevenue    decimal.Decimal `json:"gross_revenue"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	MarginAmount    decimal.Decimal `json:"margin_amount"`
	MarginPerBox    decimal.Decimal `json:"margin_per_box"`
	MarginPerBottle decimal.Decimal `json:"margin_per_bottle"`

	IsLoss           bool     `json:"is_loss"`
	IsBelowMinMargin bool     `json:"is_below_min_margin"`
	OK               bool     `json:"ok"`
	Warnings         []string `json:"warnings,omitempty"`
}
