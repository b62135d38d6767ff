package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory store fixture
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore implements every read port of the engine over in-memory slices.
// failOn simulates a transport failure on the named lookup.
type fakeStore struct {
	products   []*entity.Product
	components []*entity.CostComponent
	rules      []*entity.BusinessRule
	mappings   []*entity.PincodeMapping
	geos       []*entity.PincodeGeo
	prices     []*entity.PriceConfig
	slabs      []*entity.DeliveryFeeSlab

	failOn string
}

func (f *fakeStore) fail(op string) error {
	if f.failOn == op {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := f.fail("product"); err != nil {
		return nil, err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetBySKU(context.Context, string) (*entity.Product, error) { return nil, nil }
func (f *fakeStore) Create(context.Context, *entity.Product) error             { return nil }
func (f *fakeStore) Update(context.Context, *entity.Product) error             { return nil }
func (f *fakeStore) Delete(context.Context, string) error                      { return nil }
func (f *fakeStore) List(context.Context, int, int) ([]*entity.Product, error) {
	return f.products, nil
}

// componentStore adapts fakeStore to CostComponentRepository.
type componentStore struct{ f *fakeStore }

func (s componentStore) Create(context.Context, *entity.CostComponent) error { return nil }
func (s componentStore) Update(context.Context, *entity.CostComponent) error { return nil }
func (s componentStore) Delete(context.Context, string) error                { return nil }
func (s componentStore) GetByID(context.Context, string) (*entity.CostComponent, error) {
	return nil, nil
}
func (s componentStore) ListByProduct(_ context.Context, productID string) ([]*entity.CostComponent, error) {
	var out []*entity.CostComponent
	for _, c := range s.f.components {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (s componentStore) ListActiveByProduct(ctx context.Context, productID string) ([]*entity.CostComponent, error) {
	if err := s.f.fail("components"); err != nil {
		return nil, err
	}
	all, _ := s.ListByProduct(ctx, productID)
	var out []*entity.CostComponent
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

type ruleStore struct{ f *fakeStore }

func (s ruleStore) Upsert(context.Context, *entity.BusinessRule) error { return nil }
func (s ruleStore) Delete(context.Context, string) error               { return nil }
func (s ruleStore) List(context.Context, int, int) ([]*entity.BusinessRule, error) {
	return s.f.rules, nil
}
func (s ruleStore) ListActive(_ context.Context, volumeML int, channel pricing.Channel) ([]*entity.BusinessRule, error) {
	if err := s.f.fail("rules"); err != nil {
		return nil, err
	}
	var out []*entity.BusinessRule
	for _, r := range s.f.rules {
		if r.IsActive && r.VolumeML == volumeML && r.Channel == channel {
			out = append(out, r)
		}
	}
	return out, nil
}

type mappingStore struct{ f *fakeStore }

func (s mappingStore) Create(context.Context, *entity.PincodeMapping) error { return nil }
func (s mappingStore) Delete(context.Context, string) error                 { return nil }
func (s mappingStore) ListByPincode(_ context.Context, pincode string) ([]*entity.PincodeMapping, error) {
	if err := s.f.fail("mappings"); err != nil {
		return nil, err
	}
	var out []*entity.PincodeMapping
	for _, m := range s.f.mappings {
		if m.Pincode == pincode {
			out = append(out, m)
		}
	}
	return out, nil
}

type geoStore struct{ f *fakeStore }

func (s geoStore) Upsert(context.Context, *entity.PincodeGeo) error { return nil }
func (s geoStore) Get(_ context.Context, pincode string) (*entity.PincodeGeo, error) {
	if err := s.f.fail("geo"); err != nil {
		return nil, err
	}
	for _, g := range s.f.geos {
		if g.Pincode == pincode {
			return g, nil
		}
	}
	return nil, nil
}

type priceStore struct{ f *fakeStore }

func (s priceStore) Create(context.Context, *entity.PriceConfig) error { return nil }
func (s priceStore) Deactivate(context.Context, string) error          { return nil }
func (s priceStore) ListByProduct(context.Context, string) ([]*entity.PriceConfig, error) {
	return nil, nil
}
func (s priceStore) GetActive(_ context.Context, productID string, key pricing.PriceChannelKey) (*entity.PriceConfig, error) {
	if err := s.f.fail("prices"); err != nil {
		return nil, err
	}
	for _, p := range s.f.prices {
		if p.IsActive && p.ProductID == productID && p.ChannelKey == key {
			return p, nil
		}
	}
	return nil, nil
}

type slabStore struct{ f *fakeStore }

func (s slabStore) Create(context.Context, *entity.DeliveryFeeSlab) error { return nil }
func (s slabStore) Delete(context.Context, string) error                  { return nil }
func (s slabStore) List(context.Context, int, int) ([]*entity.DeliveryFeeSlab, error) {
	return s.f.slabs, nil
}
func (s slabStore) ListActiveByChannel(_ context.Context, channel pricing.Channel) ([]*entity.DeliveryFeeSlab, error) {
	if err := s.f.fail("slabs"); err != nil {
		return nil, err
	}
	var out []*entity.DeliveryFeeSlab
	for _, sl := range s.f.slabs {
		if sl.IsActive && sl.Channel == channel {
			out = append(out, sl)
		}
	}
	return out, nil
}

func newEngine(f *fakeStore) *CalculateOrderPAndLUseCase {
	return NewCalculateOrderPAndLUseCase(
		f, componentStore{f}, ruleStore{f}, mappingStore{f},
		geoStore{f}, priceStore{f}, slabStore{f},
	)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fptr(v float64) *float64 { return &v }

// baseFixture matches the happy-path scenario: 500ml/12-per-box product at
// ₹5/bottle, pincode 400601 served by a distributor 3 km away (radius 10),
// delivery MOQ 5 boxes, one slab [0,5] → fee 50 / est cost 30, delivery
// price ₹300/box, pickup price ₹280/box.
func baseFixture() *fakeStore {
	now := time.Now()
	return &fakeStore{
		products: []*entity.Product{{
			ID: "p1", SKU: "JAL-500", Name: "Jalveda 500ml", VolumeML: 500,
			UnitsPerBox: 12, IsActive: true, CreatedAt: now,
		}},
		components: []*entity.CostComponent{
			{ID: "c1", ProductID: "p1", Name: "water+preform", CostPerUnit: dec("3.50"), IsActive: true},
			{ID: "c2", ProductID: "p1", Name: "cap+label", CostPerUnit: dec("1.50"), IsActive: true},
			{ID: "c3", ProductID: "p1", Name: "retired shrink wrap", CostPerUnit: dec("9.99"), IsActive: false},
		},
		rules: []*entity.BusinessRule{
			{ID: "r1", VolumeML: 500, Channel: pricing.ChannelEndConsumer,
				Kind: pricing.RuleMinBoxesForDelivery, Value: dec("5"), IsActive: true},
		},
		mappings: []*entity.PincodeMapping{
			{ID: "m1", Pincode: "400601", DistributorID: "d1", DistanceKm: fptr(3),
				Distributor: &entity.Distributor{ID: "d1", Name: "Thane Depot", ServiceRadiusKm: 10, IsActive: true}},
		},
		prices: []*entity.PriceConfig{
			{ID: "pc1", ProductID: "p1", ChannelKey: pricing.PriceKeyEndConsumerDelivery, PricePerBox: dec("300"), IsActive: true},
			{ID: "pc2", ProductID: "p1", ChannelKey: pricing.PriceKeyPlantPickup, PricePerBox: dec("280"), IsActive: true},
			{ID: "pc3", ProductID: "p1", ChannelKey: pricing.PriceKeyDistributor, PricePerBox: dec("250"), IsActive: true},
		},
		slabs: []*entity.DeliveryFeeSlab{
			{ID: "s1", Channel: pricing.ChannelEndConsumer, MinDistanceKm: 0, MaxDistanceKm: 5,
				Fee: dec("50"), EstimatedCost: dec("30"), IsActive: true},
		},
	}
}

func deliveryInput() OrderPAndLInput {
	return OrderPAndLInput{
		ProductID:             "p1",
		Channel:               pricing.ChannelEndConsumer,
		Pincode:               "400601",
		QtyBoxes:              10,
		RequestedDeliveryType: pricing.DeliveryTypeDelivery,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Happy path and numeric identities
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_HappyPathDelivery(t *testing.T) {
	eng := newEngine(baseFixture())

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypeDelivery, res.EffectiveDeliveryType)
	assert.Empty(t, res.DeliveryReason)
	assert.Equal(t, pricing.PriceKeyEndConsumerDelivery, res.ChannelKey)
	assert.Equal(t, "d1", res.DistributorID)
	require.NotNil(t, res.DistanceKm)
	assert.InDelta(t, 3, *res.DistanceKm, 0.001)

	// estProductCost = 5 × 12 × 10 = 600; gross = 3000 + 50; total = 600 + 30.
	assert.True(t, res.ProductionCostPerBottle.Equal(dec("5")), "per bottle = %s", res.ProductionCostPerBottle)
	assert.True(t, res.CostPerBox.Equal(dec("60")))
	assert.True(t, res.EstProductCost.Equal(dec("600")))
	assert.True(t, res.RevenueProducts.Equal(dec("3000")))
	assert.True(t, res.GrossRevenue.Equal(dec("3050")))
	assert.True(t, res.TotalCost.Equal(dec("630")))
	assert.True(t, res.MarginAmount.Equal(dec("2420")))
	assert.True(t, res.OK)
	assert.False(t, res.IsLoss)
	assert.Empty(t, res.Warnings)
}

func TestCalculate_MarginIdentities(t *testing.T) {
	eng := newEngine(baseFixture())

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	tol := dec("0.01")
	marginCheck := res.GrossRevenue.Sub(res.TotalCost)
	assert.True(t, res.MarginAmount.Sub(marginCheck).Abs().LessThanOrEqual(tol))

	perBoxCheck := res.MarginAmount.Div(decimal.NewFromInt(int64(res.QtyBoxes)))
	assert.True(t, res.MarginPerBox.Sub(perBoxCheck).Abs().LessThanOrEqual(tol))

	perBottleCheck := res.MarginPerBox.Div(decimal.NewFromInt(int64(res.UnitsPerBox)))
	assert.True(t, res.MarginPerBottle.Sub(perBottleCheck).Abs().LessThanOrEqual(tol))
}

// Cost additivity: only active components contribute, and
// estProductCost = Σ(active) × unitsPerBox × qtyBoxes.
func TestCalculate_InactiveComponentsExcluded(t *testing.T) {
	f := baseFixture()
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	// c3 (9.99, inactive) must not appear anywhere in the cost.
	assert.True(t, res.ProductionCostPerBottle.Equal(dec("5")))
	assert.True(t, res.EstProductCost.Equal(dec("5").Mul(dec("12")).Mul(dec("10"))))
}

func TestCalculate_NoActiveComponentsIsZeroCost(t *testing.T) {
	f := baseFixture()
	f.components = nil
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.True(t, res.EstProductCost.IsZero())
	assert.True(t, res.OK)
}

func TestCalculate_Idempotent(t *testing.T) {
	eng := newEngine(baseFixture())
	in := deliveryInput()

	first, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)
	second, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delivery downgrades
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_UnknownPincodeDowngradesToPickup(t *testing.T) {
	f := baseFixture()
	eng := newEngine(f)
	in := deliveryInput()
	in.Pincode = "999999"

	res, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "pincode not serviceable", res.DeliveryReason)
	assert.True(t, res.DeliveryFee.IsZero())
	assert.True(t, res.EstDeliveryCost.IsZero())
	assert.Equal(t, pricing.PriceKeyPlantPickup, res.ChannelKey)
	// Pickup price list applies after the downgrade.
	assert.True(t, res.PricePerBox.Equal(dec("280")))
}

// Radius gate: effective radius is min(service radius, rule cap). Distributor
// radius 10, rule cap 5, distance 7 → pickup.
func TestCalculate_RuleRadiusCapsServiceRadius(t *testing.T) {
	f := baseFixture()
	f.mappings[0].DistanceKm = fptr(7)
	f.rules = append(f.rules, &entity.BusinessRule{
		ID: "r2", VolumeML: 500, Channel: pricing.ChannelEndConsumer,
		Kind: pricing.RuleMaxDeliveryRadiusKm, Value: dec("5"), IsActive: true,
	})
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "distance exceeds allowed radius", res.DeliveryReason)
	assert.True(t, res.DeliveryFee.IsZero())
	assert.True(t, res.EstDeliveryCost.IsZero())
}

func TestCalculate_DistanceBeyondServiceRadius(t *testing.T) {
	f := baseFixture()
	f.mappings[0].DistanceKm = fptr(12) // radius is 10, no rule cap
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "distance exceeds allowed radius", res.DeliveryReason)
}

func TestCalculate_UnknownDistanceDowngrades(t *testing.T) {
	f := baseFixture()
	f.mappings[0].DistanceKm = nil // no stored distance and no coordinates
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Nil(t, res.DistanceKm)
}

func TestCalculate_MOQGate(t *testing.T) {
	eng := newEngine(baseFixture()) // MOQ rule = 5
	in := deliveryInput()
	in.QtyBoxes = 3

	res, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "minimum boxes for delivery not met", res.DeliveryReason)
	assert.True(t, res.DeliveryFee.IsZero())
}

func TestCalculate_NoSlabsConfigured(t *testing.T) {
	f := baseFixture()
	f.slabs = nil
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "no delivery fee slabs configured", res.DeliveryReason)
}

func TestCalculate_NoSlabCoversDistance(t *testing.T) {
	f := baseFixture()
	f.slabs[0].MinDistanceKm = 4 // distance 3 now falls outside every slab
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryTypePickup, res.EffectiveDeliveryType)
	assert.Equal(t, "no delivery fee slab covers this distance", res.DeliveryReason)
}

// Overlapping slabs: the last matching slab in fetch order wins.
func TestCalculate_LastMatchingSlabWins(t *testing.T) {
	f := baseFixture()
	f.slabs = append(f.slabs, &entity.DeliveryFeeSlab{
		ID: "s2", Channel: pricing.ChannelEndConsumer, MinDistanceKm: 2, MaxDistanceKm: 8,
		Fee: dec("80"), EstimatedCost: dec("55"), IsActive: true,
	})
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypeDelivery, res.EffectiveDeliveryType)
	assert.True(t, res.DeliveryFee.Equal(dec("80")), "fee = %s", res.DeliveryFee)
	assert.True(t, res.EstDeliveryCost.Equal(dec("55")))
}

// Geocoded distance takes precedence over the stored mapping distance.
func TestCalculate_HaversinePrecedence(t *testing.T) {
	f := baseFixture()
	f.mappings[0].DistanceKm = fptr(50) // stale stored distance
	f.mappings[0].Distributor.Latitude = fptr(19.1860)
	f.mappings[0].Distributor.Longitude = fptr(72.9753)
	f.geos = []*entity.PincodeGeo{{Pincode: "400601", Latitude: 19.2000, Longitude: 72.9770}}
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	// ~1.6km actual distance, well inside the radius: stays delivery.
	assert.Equal(t, pricing.DeliveryTypeDelivery, res.EffectiveDeliveryType)
	require.NotNil(t, res.DistanceKm)
	assert.Less(t, *res.DistanceKm, 5.0)
}

func TestCalculate_NearestMappingByStoredDistance(t *testing.T) {
	f := baseFixture()
	f.mappings = append([]*entity.PincodeMapping{
		{ID: "m0", Pincode: "400601", DistributorID: "d2", DistanceKm: fptr(9),
			Distributor: &entity.Distributor{ID: "d2", Name: "Far Depot", ServiceRadiusKm: 10, IsActive: true}},
	}, f.mappings...)
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)
	assert.Equal(t, "d1", res.DistributorID, "nearest candidate must win")
}

// ──────────────────────────────────────────────────────────────────────────────
// Channel gating
// ──────────────────────────────────────────────────────────────────────────────

// Distance/MOQ/slab logic applies to end_consumer only; other channels pass
// through with the requested delivery type and no fee.
func TestCalculate_DistributorChannelBypassesDeliveryLogic(t *testing.T) {
	f := baseFixture()
	eng := newEngine(f)
	in := deliveryInput()
	in.Channel = pricing.ChannelDistributor
	in.Pincode = "999999" // would fail serviceability for end_consumer

	res, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, pricing.DeliveryTypeDelivery, res.EffectiveDeliveryType)
	assert.Empty(t, res.DeliveryReason)
	assert.True(t, res.DeliveryFee.IsZero())
	assert.Equal(t, pricing.PriceKeyDistributor, res.ChannelKey)
	assert.True(t, res.PricePerBox.Equal(dec("250")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Margin classification
// ──────────────────────────────────────────────────────────────────────────────

// 24 bottles × ₹10 cost against a ₹200 box price is a ₹40 loss.
func TestCalculate_LossDetection(t *testing.T) {
	now := time.Now()
	f := &fakeStore{
		products: []*entity.Product{{
			ID: "p2", SKU: "JAL-1000", Name: "Jalveda 1L", VolumeML: 1000,
			UnitsPerBox: 24, IsActive: true, CreatedAt: now,
		}},
		components: []*entity.CostComponent{
			{ID: "c1", ProductID: "p2", Name: "all-in", CostPerUnit: dec("10"), IsActive: true},
		},
		prices: []*entity.PriceConfig{
			{ID: "pc1", ProductID: "p2", ChannelKey: pricing.PriceKeyPlantPickup, PricePerBox: dec("200"), IsActive: true},
		},
	}
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), OrderPAndLInput{
		ProductID:             "p2",
		Channel:               pricing.ChannelEndConsumer,
		Pincode:               "400601",
		QtyBoxes:              1,
		RequestedDeliveryType: pricing.DeliveryTypePickup,
	})
	require.NoError(t, err)

	assert.True(t, res.EstProductCost.Equal(dec("240")))
	assert.True(t, res.GrossRevenue.Equal(dec("200")))
	assert.True(t, res.MarginAmount.Equal(dec("-40")))
	assert.True(t, res.IsLoss)
	assert.False(t, res.OK)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "-40.00")
}

func TestCalculate_BelowMinimumMarginWarnings(t *testing.T) {
	f := baseFixture()
	f.rules = append(f.rules,
		&entity.BusinessRule{ID: "r3", VolumeML: 500, Channel: pricing.ChannelEndConsumer,
			Kind: pricing.RuleMinMarginPerBottle, Value: dec("25"), IsActive: true},
		&entity.BusinessRule{ID: "r4", VolumeML: 500, Channel: pricing.ChannelEndConsumer,
			Kind: pricing.RuleMinMarginPerBox, Value: dec("300"), IsActive: true},
	)
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	require.NoError(t, err)

	// marginPerBox = 242, marginPerBottle ≈ 20.17: both floors are violated.
	assert.False(t, res.IsLoss)
	assert.True(t, res.IsBelowMinMargin)
	assert.False(t, res.OK)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "below minimum 25.00")
	assert.Contains(t, res.Warnings[1], "below minimum 300.00")
}

// A zero-valued rule row means disabled, identical to an absent row.
func TestCalculate_ZeroRuleIsDisabled(t *testing.T) {
	f := baseFixture()
	f.rules = []*entity.BusinessRule{
		{ID: "r1", VolumeML: 500, Channel: pricing.ChannelEndConsumer,
			Kind: pricing.RuleMinMarginPerBottle, Value: decimal.Zero, IsActive: true},
	}
	eng := newEngine(f)
	in := deliveryInput()
	in.QtyBoxes = 1 // no MOQ rule anymore

	res, err := eng.Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.Warnings)
}

// ──────────────────────────────────────────────────────────────────────────────
// Hard failures
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_ProductNotFound(t *testing.T) {
	eng := newEngine(baseFixture())
	in := deliveryInput()
	in.ProductID = "ghost"

	res, err := eng.Calculate(context.Background(), in)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCalculate_PriceConfigMissing(t *testing.T) {
	f := baseFixture()
	f.prices = nil
	eng := newEngine(f)

	res, err := eng.Calculate(context.Background(), deliveryInput())
	assert.Nil(t, res, "no partial result on hard failure")
	assert.ErrorIs(t, err, domain.ErrPriceConfigMissing)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestCalculate_StoreUnavailableIsDistinct(t *testing.T) {
	for _, op := range []string{"product", "components", "rules", "mappings", "geo", "prices", "slabs"} {
		t.Run(op, func(t *testing.T) {
			f := baseFixture()
			f.failOn = op
			eng := newEngine(f)

			res, err := eng.Calculate(context.Background(), deliveryInput())
			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			assert.NotErrorIs(t, err, domain.ErrProductNotFound)
			assert.NotErrorIs(t, err, domain.ErrPriceConfigMissing)
		})
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	eng := newEngine(baseFixture())

	cases := []struct {
		name string
		mut  func(*OrderPAndLInput)
	}{
		{"zero quantity", func(in *OrderPAndLInput) { in.QtyBoxes = 0 }},
		{"negative quantity", func(in *OrderPAndLInput) { in.QtyBoxes = -4 }},
		{"empty product", func(in *OrderPAndLInput) { in.ProductID = "" }},
		{"unknown channel", func(in *OrderPAndLInput) { in.Channel = "wholesale" }},
		{"unknown delivery type", func(in *OrderPAndLInput) { in.RequestedDeliveryType = "drone" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := deliveryInput()
			tc.mut(&in)
			_, err := eng.Calculate(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCalculate_ZeroUnitsPerBoxRejected(t *testing.T) {
	f := baseFixture()
	f.products[0].UnitsPerBox = 0
	eng := newEngine(f)

	in := deliveryInput()
	in.RequestedDeliveryType = pricing.DeliveryTypePickup

	res, err := eng.Calculate(context.Background(), in)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
