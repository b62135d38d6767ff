package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/pricing"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

var _ repository.BusinessRuleRepository = (*BusinessRuleRepo)(nil)

// BusinessRuleRepo implements BusinessRuleRepository on PostgreSQL.
type BusinessRuleRepo struct {
	q Querier
}

// NewBusinessRuleRepository builds the persistence adapter for business rules.
func NewBusinessRuleRepository(q Querier) *BusinessRuleRepo {
	return &BusinessRuleRepo{q: q}
}

const ruleColumns = `id, volume_ml, channel, kind, value, is_active, created_at, updated_at`

// Upsert inserts the rule or overwrites the value of the existing
// (volume_ml, channel, kind) row.
func (r *BusinessRuleRepo) Upsert(ctx context.Context, rule *entity.BusinessRule) error {
	query := `
		INSERT INTO business_rules (id, volume_ml, channel, kind, value, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (volume_ml, channel, kind)
		DO UPDATE SET value = EXCLUDED.value, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		rule.ID, rule.VolumeML, rule.Channel, rule.Kind, rule.Value,
		rule.IsActive, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert business rule: %w", err)
	}
	return nil
}

// ListActive returns the active rules for one (volume, channel) pair.
func (r *BusinessRuleRepo) ListActive(ctx context.Context, volumeML int, channel pricing.Channel) ([]*entity.BusinessRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM business_rules
		WHERE volume_ml = $1 AND channel = $2 AND is_active = true`
	return r.listRules(ctx, query, volumeML, channel)
}

// List returns all rules with pagination.
func (r *BusinessRuleRepo) List(ctx context.Context, limit, offset int) ([]*entity.BusinessRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM business_rules
		ORDER BY volume_ml, channel, kind LIMIT $1 OFFSET $2`
	return r.listRules(ctx, query, limit, offset)
}

func (r *BusinessRuleRepo) listRules(ctx context.Context, query string, args ...any) ([]*entity.BusinessRule, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list business rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessRule
	for rows.Next() {
		var br entity.BusinessRule
		if err := rows.Scan(&br.ID, &br.VolumeML, &br.Channel, &br.Kind, &br.Value,
			&br.IsActive, &br.CreatedAt, &br.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business rule: %w", err)
		}
		list = append(list, &br)
	}
	return list, rows.Err()
}

// Delete removes a rule by ID.
func (r *BusinessRuleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM business_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business rule: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.PriceConfigRepository = (*PriceConfigRepo)(nil)

// PriceConfigRepo implements PriceConfigRepository on PostgreSQL.
type PriceConfigRepo struct {
	q Querier
}

// NewPriceConfigRepository builds the persistence adapter for price configs.
func NewPriceConfigRepository(q Querier) *PriceConfigRepo {
	return &PriceConfigRepo{q: q}
}

const priceColumns = `id, product_id, channel_key, price_per_box, is_active, created_at, updated_at`

// Create deactivates any previous active row for the same
// (product, channel key) and inserts the new one.
func (r *PriceConfigRepo) Create(ctx context.Context, config *entity.PriceConfig) error {
	deactivate := `
		UPDATE price_configs SET is_active = false, updated_at = now()
		WHERE product_id = $1 AND channel_key = $2 AND is_active = true`
	if _, err := r.q.Exec(ctx, deactivate, config.ProductID, config.ChannelKey); err != nil {
		return fmt.Errorf("deactivate previous price config: %w", err)
	}
	insert := `
		INSERT INTO price_configs (id, product_id, channel_key, price_per_box, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, insert,
		config.ID, config.ProductID, config.ChannelKey, config.PricePerBox,
		config.IsActive, config.CreatedAt, config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price config: %w", err)
	}
	return nil
}

// GetActive returns the single active row for (product, channel key), or
// (nil, nil) when none exists.
func (r *PriceConfigRepo) GetActive(ctx context.Context, productID string, key pricing.PriceChannelKey) (*entity.PriceConfig, error) {
	query := `SELECT ` + priceColumns + ` FROM price_configs
		WHERE product_id = $1 AND channel_key = $2 AND is_active = true`
	var pc entity.PriceConfig
	err := r.q.QueryRow(ctx, query, productID, key).Scan(
		&pc.ID, &pc.ProductID, &pc.ChannelKey, &pc.PricePerBox,
		&pc.IsActive, &pc.CreatedAt, &pc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active price config: %w", err)
	}
	return &pc, nil
}

// ListByProduct returns every price row of a product, active and historical.
func (r *PriceConfigRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.PriceConfig, error) {
	query := `SELECT ` + priceColumns + ` FROM price_configs
		WHERE product_id = $1 ORDER BY channel_key, created_at DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list price configs: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceConfig
	for rows.Next() {
		var pc entity.PriceConfig
		if err := rows.Scan(&pc.ID, &pc.ProductID, &pc.ChannelKey, &pc.PricePerBox,
			&pc.IsActive, &pc.CreatedAt, &pc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price config: %w", err)
		}
		list = append(list, &pc)
	}
	return list, rows.Err()
}

// Deactivate marks one price row inactive.
func (r *PriceConfigRepo) Deactivate(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE price_configs SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate price config: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.DeliveryFeeSlabRepository = (*DeliveryFeeSlabRepo)(nil)

// DeliveryFeeSlabRepo implements DeliveryFeeSlabRepository on PostgreSQL.
type DeliveryFeeSlabRepo struct {
	q Querier
}

// NewDeliveryFeeSlabRepository builds the persistence adapter for fee slabs.
func NewDeliveryFeeSlabRepository(q Querier) *DeliveryFeeSlabRepo {
	return &DeliveryFeeSlabRepo{q: q}
}

const slabColumns = `id, channel, min_distance_km, max_distance_km, fee, estimated_cost, is_active, created_at, updated_at`

// Create persists a new fee slab.
func (r *DeliveryFeeSlabRepo) Create(ctx context.Context, slab *entity.DeliveryFeeSlab) error {
	query := `
		INSERT INTO delivery_fee_slabs (id, channel, min_distance_km, max_distance_km, fee, estimated_cost, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		slab.ID, slab.Channel, slab.MinDistanceKm, slab.MaxDistanceKm,
		slab.Fee, slab.EstimatedCost, slab.IsActive, slab.CreatedAt, slab.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery fee slab: %w", err)
	}
	return nil
}

// ListActiveByChannel returns active slabs in stable insertion order; slab
// selection in the engine depends on that order.
func (r *DeliveryFeeSlabRepo) ListActiveByChannel(ctx context.Context, channel pricing.Channel) ([]*entity.DeliveryFeeSlab, error) {
	query := `SELECT ` + slabColumns + ` FROM delivery_fee_slabs
		WHERE channel = $1 AND is_active = true ORDER BY created_at ASC, id ASC`
	return r.listSlabs(ctx, query, channel)
}

// List returns all slabs with pagination.
func (r *DeliveryFeeSlabRepo) List(ctx context.Context, limit, offset int) ([]*entity.DeliveryFeeSlab, error) {
	query := `SELECT ` + slabColumns + ` FROM delivery_fee_slabs
		ORDER BY channel, created_at ASC LIMIT $1 OFFSET $2`
	return r.listSlabs(ctx, query, limit, offset)
}

func (r *DeliveryFeeSlabRepo) listSlabs(ctx context.Context, query string, args ...any) ([]*entity.DeliveryFeeSlab, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list delivery fee slabs: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryFeeSlab
	for rows.Next() {
		var s entity.DeliveryFeeSlab
		if err := rows.Scan(&s.ID, &s.Channel, &s.MinDistanceKm, &s.MaxDistanceKm,
			&s.Fee, &s.EstimatedCost, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery fee slab: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete removes a slab by ID.
func (r *DeliveryFeeSlabRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM delivery_fee_slabs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete delivery fee slab: %w", err)
	}
	return nil
}
