package repository

import (
	"context"

	"github.com/jalveda/ops-api/internal/domain/entity"
)

// DistributorRepository defines the persistence port for Distributor.
type DistributorRepository interface {
	Create(ctx context.Context, distributor *entity.Distributor) error
	GetByID(ctx context.Context, id string) (*entity.Distributor, error)
	Update(ctx context.Context, distributor *entity.Distributor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Distributor, error)
	Delete(ctx context.Context, id string) error
}

// PincodeMappingRepository defines the persistence port for PincodeMapping.
type PincodeMappingRepository interface {
	Create(ctx context.Context, mapping *entity.PincodeMapping) error
	// ListByPincode returns the mappings for a pincode with Distributor
	// populated, ordered by stored distance ascending (nulls last); ties keep
	// fetch order. The engine picks the first as the nearest candidate.
	ListByPincode(ctx context.Context, pincode string) ([]*entity.PincodeMapping, error)
	Delete(ctx context.Context, id string) error
}

// PincodeGeoRepository defines the persistence port for PincodeGeo.
type PincodeGeoRepository interface {
	// Get returns (nil, nil) when the pincode has no known coordinates.
	Get(ctx context.Context, pincode string) (*entity.PincodeGeo, error)
	Upsert(ctx context.Context, geo *entity.PincodeGeo) error
}
