package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one packaged SKU in the catalog (e.g. 500ml bottle, case of 12).
// Production cost is not stored here; it is the sum of the product's active
// cost components at calculation time.
type Product struct {
	ID          string
	SKU         string // unique catalog code
	Name        string
	VolumeML    int // bottle volume in millilitres
	UnitsPerBox int // bottles per box, >= 1
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CostComponent is one named cost line of a product (water, preform, cap,
// label, labour...). Only active components contribute to production cost.
type CostComponent struct {
	ID          string
	ProductID   string
	Name        string
	CostPerUnit decimal.Decimal // cost per bottle
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
