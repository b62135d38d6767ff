// Package pricing implements the order profitability and delivery-eligibility
// engine. A calculation is a single-pass, read-only computation over a handful
// of store lookups: cost aggregation → delivery-mode resolution → price lookup
// → revenue/margin computation → rule-based classification. Nothing is
// written, so a failed calculation is always safe to retry.
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/geo"
	"github.com/jalveda/ops-api/internal/domain/pricing"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// OrderPAndLInput is the order intent being evaluated.
type OrderPAndLInput struct {
	ProductID             string
	Channel               pricing.Channel
	Pincode               string
	QtyBoxes              int
	RequestedDeliveryType pricing.DeliveryType
}

// OrderPAndLResult carries every intermediate figure of the calculation.
// Callers are expected to surface all of it, not just OK.
type OrderPAndLResult struct {
	ProductID   string
	ProductName string
	SKU         string
	VolumeML    int
	UnitsPerBox int
	Channel     pricing.Channel
	ChannelKey  pricing.PriceChannelKey
	Pincode     string
	QtyBoxes    int

	// Cost side.
	ProductionCostPerBottle decimal.Decimal
	CostPerBox              decimal.Decimal
	EstProductCost          decimal.Decimal

	// Rule gates applied (zero = disabled).
	MinMarginPerBottle  decimal.Decimal
	MinMarginPerBox     decimal.Decimal
	MinBoxesForDelivery int64
	MaxDeliveryRadiusKm float64

	// Delivery decision.
	RequestedDeliveryType pricing.DeliveryType
	EffectiveDeliveryType pricing.DeliveryType
	DeliveryReason        string // set when the request was downgraded to pickup
	DistributorID         string
	DistributorName       string
	DistanceKm            *float64 // nil when no distance could be determined
	DeliveryFee           decimal.Decimal
	EstDeliveryCost       decimal.Decimal

	// Revenue side.
	PricePerBox     decimal.Decimal
	RevenueProducts decimal.Decimal
	RevenueDelivery decimal.Decimal
	GrossRevenue    decimal.Decimal
	TotalCost       decimal.Decimal
	MarginAmount    decimal.Decimal
	MarginPerBox    decimal.Decimal
	MarginPerBottle decimal.Decimal

	// Verdict.
	IsLoss           bool
	IsBelowMinMargin bool
	OK               bool
	Warnings         []string
}

// CalculateOrderPAndLUseCase is the engine. It owns no state beyond its
// injected read-only lookups; invocations are independent and idempotent.
type CalculateOrderPAndLUseCase struct {
	products   repository.ProductRepository
	components repository.CostComponentRepository
	rules      repository.BusinessRuleRepository
	mappings   repository.PincodeMappingRepository
	geos       repository.PincodeGeoRepository
	prices     repository.PriceConfigRepository
	slabs      repository.DeliveryFeeSlabRepository
}

// NewCalculateOrderPAndLUseCase wires the engine to its store lookups.
func NewCalculateOrderPAndLUseCase(
	products repository.ProductRepository,
	components repository.CostComponentRepository,
	rules repository.BusinessRuleRepository,
	mappings repository.PincodeMappingRepository,
	geos repository.PincodeGeoRepository,
	prices repository.PriceConfigRepository,
	slabs repository.DeliveryFeeSlabRepository,
) *CalculateOrderPAndLUseCase {
	return &CalculateOrderPAndLUseCase{
		products:   products,
		components: components,
		rules:      rules,
		mappings:   mappings,
		geos:       geos,
		prices:     prices,
		slabs:      slabs,
	}
}

// Calculate evaluates the order intent and returns the profitability verdict.
// Hard failures: domain.ErrProductNotFound, domain.ErrPriceConfigMissing
// (permanent) and domain.ErrStoreUnavailable (transient). Every business
// outcome — downgrade to pickup, margin shortfall — is a result field, never
// an error.
func (uc *CalculateOrderPAndLUseCase) Calculate(ctx context.Context, in OrderPAndLInput) (*OrderPAndLResult, error) {
	if in.ProductID == "" || in.QtyBoxes <= 0 || !in.Channel.Valid() || !in.RequestedDeliveryType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, storeErr("fetch product", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	// Per-bottle math divides by units per box; a corrupted row must not
	// take the whole quote path down.
	if product.UnitsPerBox < 1 {
		return nil, fmt.Errorf("%w: product %s has units_per_box %d", domain.ErrInvalidInput, product.ID, product.UnitsPerBox)
	}

	qty := decimal.NewFromInt(int64(in.QtyBoxes))
	unitsPerBox := decimal.NewFromInt(int64(product.UnitsPerBox))

	res := &OrderPAndLResult{
		ProductID:             product.ID,
		ProductName:           product.Name,
		SKU:                   product.SKU,
		VolumeML:              product.VolumeML,
		UnitsPerBox:           product.UnitsPerBox,
		Channel:               in.Channel,
		Pincode:               in.Pincode,
		QtyBoxes:              in.QtyBoxes,
		RequestedDeliveryType: in.RequestedDeliveryType,
		EffectiveDeliveryType: in.RequestedDeliveryType,
		DeliveryFee:           decimal.Zero,
		EstDeliveryCost:       decimal.Zero,
	}

	// Step 1 — production cost. No active components is a valid zero-cost
	// product, not an error.
	comps, err := uc.components.ListActiveByProduct(ctx, product.ID)
	if err != nil {
		return nil, storeErr("fetch cost components", err)
	}
	perBottle := decimal.Zero
	for _, c := range comps {
		perBottle = perBottle.Add(c.CostPerUnit)
	}
	res.ProductionCostPerBottle = perBottle
	res.CostPerBox = perBottle.Mul(unitsPerBox)
	res.EstProductCost = res.CostPerBox.Mul(qty)

	// Step 2 — applicable business rules, fetched in one batch. Missing
	// kinds default to zero (rule disabled).
	ruleRows, err := uc.rules.ListActive(ctx, product.VolumeML, in.Channel)
	if err != nil {
		return nil, storeErr("fetch business rules", err)
	}
	rs := pricing.RuleSet{}
	for _, r := range ruleRows {
		rs[r.Kind] = r.Value
	}
	res.MinMarginPerBottle = rs.MinMarginPerBottle()
	res.MinMarginPerBox = rs.MinMarginPerBox()
	res.MinBoxesForDelivery = rs.MinBoxesForDelivery()
	res.MaxDeliveryRadiusKm = rs.MaxDeliveryRadiusKm()

	// Step 3 — delivery-mode resolution. Distance, MOQ and slab gating only
	// apply to the end-consumer channel: every other channel is assumed
	// pre-negotiated and passes through untouched (a product decision, not a
	// gap — see DESIGN.md before "completing" this for other channels).
	if in.Channel == pricing.ChannelEndConsumer && in.RequestedDeliveryType == pricing.DeliveryTypeDelivery {
		if err := uc.resolveDelivery(ctx, in, rs, res); err != nil {
			return nil, err
		}
	}

	// Step 4 — price resolution for the effective channel key.
	res.ChannelKey = pricing.PriceKeyFor(in.Channel, res.EffectiveDeliveryType)
	price, err := uc.prices.GetActive(ctx, product.ID, res.ChannelKey)
	if err != nil {
		return nil, storeErr("fetch price config", err)
	}
	if price == nil {
		return nil, fmt.Errorf("%w: product %s, channel key %s", domain.ErrPriceConfigMissing, product.ID, res.ChannelKey)
	}
	res.PricePerBox = price.PricePerBox

	// Step 5 — revenue and margin.
	res.RevenueProducts = price.PricePerBox.Mul(qty)
	res.RevenueDelivery = res.DeliveryFee
	res.GrossRevenue = res.RevenueProducts.Add(res.RevenueDelivery)
	res.TotalCost = res.EstProductCost.Add(res.EstDeliveryCost)
	res.MarginAmount = res.GrossRevenue.Sub(res.TotalCost)
	res.MarginPerBox = res.MarginAmount.Div(qty)
	res.MarginPerBottle = res.MarginPerBox.Div(unitsPerBox)

	// Step 6 — classification.
	res.IsLoss = res.MarginAmount.IsNegative()
	if res.IsLoss {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"order is loss-making: margin %s", res.MarginAmount.StringFixed(2)))
	}
	if res.MinMarginPerBottle.IsPositive() && res.MarginPerBottle.LessThan(res.MinMarginPerBottle) {
		res.IsBelowMinMargin = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"margin per bottle %s is below minimum %s",
			res.MarginPerBottle.StringFixed(2), res.MinMarginPerBottle.StringFixed(2)))
	}
	if res.MinMarginPerBox.IsPositive() && res.MarginPerBox.LessThan(res.MinMarginPerBox) {
		res.IsBelowMinMargin = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"margin per box %s is below minimum %s",
			res.MarginPerBox.StringFixed(2), res.MinMarginPerBox.StringFixed(2)))
	}
	res.OK = !res.IsLoss && !res.IsBelowMinMargin

	return res, nil
}

// resolveDelivery runs the distance, MOQ and fee-slab gates for an
// end-consumer delivery request. The first failed gate downgrades the order
// to pickup with a reason and short-circuits the rest; a downgraded order
// always carries zero delivery fee and cost.
func (uc *CalculateOrderPAndLUseCase) resolveDelivery(
	ctx context.Context,
	in OrderPAndLInput,
	rs pricing.RuleSet,
	res *OrderPAndLResult,
) error {
	mappings, err := uc.mappings.ListByPincode(ctx, in.Pincode)
	if err != nil {
		return storeErr("fetch pincode mappings", err)
	}
	if len(mappings) == 0 {
		downgrade(res, "pincode not serviceable")
		return nil
	}

	nearest := nearestMapping(mappings)
	dist := nearest.Distributor
	res.DistributorID = dist.ID
	res.DistributorName = dist.Name

	// Precise great-circle distance when both sides are geocoded, otherwise
	// the mapping's stored road distance, otherwise unknown.
	pinGeo, err := uc.geos.Get(ctx, in.Pincode)
	if err != nil {
		return storeErr("fetch pincode geo", err)
	}
	switch {
	case pinGeo != nil && dist.Latitude != nil && dist.Longitude != nil:
		km := geo.HaversineKm(pinGeo.Latitude, pinGeo.Longitude, *dist.Latitude, *dist.Longitude)
		res.DistanceKm = &km
	case nearest.DistanceKm != nil:
		km := *nearest.DistanceKm
		res.DistanceKm = &km
	}

	effectiveRadius := dist.ServiceRadiusKm
	if ruleCap := rs.MaxDeliveryRadiusKm(); ruleCap > 0 && ruleCap < effectiveRadius {
		effectiveRadius = ruleCap
	}
	if res.DistanceKm == nil || *res.DistanceKm > effectiveRadius {
		downgrade(res, "distance exceeds allowed radius")
		return nil
	}

	if moq := rs.MinBoxesForDelivery(); moq > 0 && int64(in.QtyBoxes) < moq {
		downgrade(res, "minimum boxes for delivery not met")
		return nil
	}

	slabs, err := uc.slabs.ListActiveByChannel(ctx, pricing.ChannelEndConsumer)
	if err != nil {
		return storeErr("fetch delivery fee slabs", err)
	}
	if len(slabs) == 0 {
		downgrade(res, "no delivery fee slabs configured")
		return nil
	}
	var matched *entity.DeliveryFeeSlab
	for _, s := range slabs {
		// Later slabs override earlier overlapping matches; see DESIGN.md
		// before changing this to first-match.
		if *res.DistanceKm >= s.MinDistanceKm && *res.DistanceKm <= s.MaxDistanceKm {
			matched = s
		}
	}
	if matched == nil {
		downgrade(res, "no delivery fee slab covers this distance")
		return nil
	}
	res.DeliveryFee = matched.Fee
	res.EstDeliveryCost = matched.EstimatedCost
	return nil
}

// nearestMapping picks the mapping with the smallest stored distance;
// missing distances sort last, exact ties keep fetch order.
func nearestMapping(mappings []*entity.PincodeMapping) *entity.PincodeMapping {
	best := mappings[0]
	for _, m := range mappings[1:] {
		if m.DistanceKm == nil {
			continue
		}
		if best.DistanceKm == nil || *m.DistanceKm < *best.DistanceKm {
			best = m
		}
	}
	return best
}

func downgrade(res *OrderPAndLResult, reason string) {
	res.EffectiveDeliveryType = pricing.DeliveryTypePickup
	res.DeliveryReason = reason
	res.DeliveryFee = decimal.Zero
	res.EstDeliveryCost = decimal.Zero
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
