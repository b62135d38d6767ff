// Package rules manages the typed pricing gates and delivery fee slabs that
// parameterize the order profitability engine.
package rules

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/pricing"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// RulesUseCase CRUD use cases for business rules and fee slabs.
type RulesUseCase struct {
	rules repository.BusinessRuleRepository
	slabs repository.DeliveryFeeSlabRepository
}

// NewRulesUseCase builds the use case.
func NewRulesUseCase(
	rules repository.BusinessRuleRepository,
	slabs repository.DeliveryFeeSlabRepository,
) *RulesUseCase {
	return &RulesUseCase{rules: rules, slabs: slabs}
}

// UpsertRule sets the value of one (volume, channel, kind) gate. Zero
// disables the gate.
func (uc *RulesUseCase) UpsertRule(ctx context.Context, in dto.UpsertRuleRequest) (*dto.RuleResponse, error) {
	kind := pricing.RuleKind(in.Kind)
	channel := pricing.Channel(in.Channel)
	if !kind.Valid() || !channel.Valid() || in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.BusinessRule{
		ID:        uuid.New().String(),
		VolumeML:  in.VolumeML,
		Channel:   channel,
		Kind:      kind,
		Value:     in.Value,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.rules.Upsert(ctx, rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// ListRules returns all rules with pagination.
func (uc *RulesUseCase) ListRules(ctx context.Context, page dto.PageRequest) ([]*dto.RuleResponse, error) {
	page.DefaultPage()
	rules, err := uc.rules.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RuleResponse, len(rules))
	for i, r := range rules {
		out[i] = toRuleResponse(r)
	}
	return out, nil
}

// DeleteRule removes a rule; the engine then treats the gate as disabled.
func (uc *RulesUseCase) DeleteRule(ctx context.Context, id string) error {
	return uc.rules.Delete(ctx, id)
}

// CreateSlab adds a delivery fee slab. Overlapping ranges are allowed; the
// engine resolves overlaps by keeping the last match in insertion order.
func (uc *RulesUseCase) CreateSlab(ctx context.Context, in dto.CreateSlabRequest) (*dto.SlabResponse, error) {
	channel := pricing.Channel(in.Channel)
	if !channel.Valid() || in.MinDistanceKm < 0 || in.MaxDistanceKm <= in.MinDistanceKm {
		return nil, domain.ErrInvalidInput
	}
	if in.Fee.IsNegative() || in.EstimatedCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	slab := &entity.DeliveryFeeSlab{
		ID:            uuid.New().String(),
		Channel:       channel,
		MinDistanceKm: in.MinDistanceKm,
		MaxDistanceKm: in.MaxDistanceKm,
		Fee:           in.Fee,
		EstimatedCost: in.EstimatedCost,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.slabs.Create(ctx, slab); err != nil {
		return nil, err
	}
	return toSlabResponse(slab), nil
}

// ListSlabs returns all slabs with pagination.
func (uc *RulesUseCase) ListSlabs(ctx context.Context, page dto.PageRequest) ([]*dto.SlabResponse, error) {
	page.DefaultPage()
	slabs, err := uc.slabs.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SlabResponse, len(slabs))
	for i, s := range slabs {
		out[i] = toSlabResponse(s)
	}
	return out, nil
}

// DeleteSlab removes a fee slab.
func (uc *RulesUseCase) DeleteSlab(ctx context.Context, id string) error {
	return uc.slabs.Delete(ctx, id)
}

func toRuleResponse(r *entity.BusinessRule) *dto.RuleResponse {
	return &dto.RuleResponse{
		ID:        r.ID,
		VolumeML:  r.VolumeML,
		Channel:   string(r.Channel),
		Kind:      string(r.Kind),
		Value:     r.Value,
		IsActive:  r.IsActive,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSlabResponse(s *entity.DeliveryFeeSlab) *dto.SlabResponse {
	return &dto.SlabResponse{
		ID:            s.ID,
		Channel:       string(s.Channel),
		MinDistanceKm: s.MinDistanceKm,
		MaxDistanceKm: s.MaxDistanceKm,
		Fee:           s.Fee,
		EstimatedCost: s.EstimatedCost,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}
