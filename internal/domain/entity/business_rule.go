package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// BusinessRule is one numeric gate of the pricing engine, keyed by
// (volume_ml, channel, kind). A missing row means the rule is disabled;
// readers must default it to zero, never error.
type BusinessRule struct {
	ID        string
	VolumeML  int
	Channel   pricing.Channel
	Kind      pricing.RuleKind
	Value     decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
