package pricing

import "github.com/shopspring/decimal"

// RuleKind enumerates the business-rule gates the engine understands.
// Rules are stored as (volume_ml, channel, kind) → value rows; a missing row
// means the rule is disabled, which the engine treats as value 0.
type RuleKind string

const (
	RuleMinMarginPerBottle  RuleKind = "min_margin_per_bottle"
	RuleMinMarginPerBox     RuleKind = "min_margin_per_box"
	RuleMinBoxesForDelivery RuleKind = "min_boxes_for_delivery"
	RuleMaxDeliveryRadiusKm RuleKind = "max_delivery_radius_km"
)

// Valid reports whether k is a rule kind the engine understands.
func (k RuleKind) Valid() bool {
	switch k {
	case RuleMinMarginPerBottle, RuleMinMarginPerBox, RuleMinBoxesForDelivery, RuleMaxDeliveryRadiusKm:
		return true
	}
	return false
}

// RuleSet is the batch of rule values applicable to one (volume, channel)
// pair. Lookups on absent kinds return zero (rule disabled).
type RuleSet map[RuleKind]decimal.Decimal

// Value returns the configured value for kind, or zero when absent.
func (rs RuleSet) Value(kind RuleKind) decimal.Decimal {
	if v, ok := rs[kind]; ok {
		return v
	}
	return decimal.Zero
}

// MinMarginPerBottle is the per-bottle margin floor (0 = disabled).
func (rs RuleSet) MinMarginPerBottle() decimal.Decimal {
	return rs.Value(RuleMinMarginPerBottle)
}

// MinMarginPerBox is the per-box margin floor (0 = disabled).
func (rs RuleSet) MinMarginPerBox() decimal.Decimal {
	return rs.Value(RuleMinMarginPerBox)
}

// MinBoxesForDelivery is the delivery MOQ in boxes (0 = disabled).
func (rs RuleSet) MinBoxesForDelivery() int64 {
	return rs.Value(RuleMinBoxesForDelivery).IntPart()
}

// MaxDeliveryRadiusKm caps the delivery radius regardless of the
// distributor's own service radius (0 = no cap).
func (rs RuleSet) MaxDeliveryRadiusKm() float64 {
	return rs.Value(RuleMaxDeliveryRadiusKm).InexactFloat64()
}
