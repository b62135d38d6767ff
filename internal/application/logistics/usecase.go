// Package logistics manages delivery partners, pincode coverage and the
// serviceability probe the sales team uses before quoting.
package logistics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/geo"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// LogisticsUseCase use cases for distributors and pincode maps.
type LogisticsUseCase struct {
	distributors repository.DistributorRepository
	mappings     repository.PincodeMappingRepository
	geos         repository.PincodeGeoRepository
}

// NewLogisticsUseCase builds the use case.
func NewLogisticsUseCase(
	distributors repository.DistributorRepository,
	mappings repository.PincodeMappingRepository,
	geos repository.PincodeGeoRepository,
) *LogisticsUseCase {
	return &LogisticsUseCase{distributors: distributors, mappings: mappings, geos: geos}
}

// CreateDistributor onboards a delivery partner.
func (uc *LogisticsUseCase) CreateDistributor(ctx context.Context, in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	if in.ServiceRadiusKm <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := &entity.Distributor{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Phone:           in.Phone,
		City:            in.City,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		ServiceRadiusKm: in.ServiceRadiusKm,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.distributors.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// UpdateDistributor applies a partial update.
func (uc *LogisticsUseCase) UpdateDistributor(ctx context.Context, id string, in dto.UpdateDistributorRequest) (*dto.DistributorResponse, error) {
	d, err := uc.distributors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Phone != nil {
		d.Phone = *in.Phone
	}
	if in.City != nil {
		d.City = *in.City
	}
	if in.Latitude != nil {
		d.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		d.Longitude = in.Longitude
	}
	if in.ServiceRadiusKm != nil {
		if *in.ServiceRadiusKm <= 0 {
			return nil, domain.ErrInvalidInput
		}
		d.ServiceRadiusKm = *in.ServiceRadiusKm
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	d.UpdatedAt = time.Now()
	if err := uc.distributors.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// DeleteDistributor removes a distributor.
func (uc *LogisticsUseCase) DeleteDistributor(ctx context.Context, id string) error {
	return uc.distributors.Delete(ctx, id)
}

// ListDistributors returns distributors with pagination.
func (uc *LogisticsUseCase) ListDistributors(ctx context.Context, page dto.PageRequest) ([]*dto.DistributorResponse, error) {
	page.DefaultPage()
	list, err := uc.distributors.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DistributorResponse, len(list))
	for i, d := range list {
		out[i] = toDistributorResponse(d)
	}
	return out, nil
}

// MapPincode associates a pincode with a distributor. When both sides are
// geocoded and no distance was given, the great-circle distance is stored as
// the fallback for engine lookups.
func (uc *LogisticsUseCase) MapPincode(ctx context.Context, in dto.MapPincodeRequest) (*dto.PincodeMappingResponse, error) {
	d, err := uc.distributors.GetByID(ctx, in.DistributorID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	distance := in.DistanceKm
	if distance == nil && d.Latitude != nil && d.Longitude != nil {
		if g, err := uc.geos.Get(ctx, in.Pincode); err == nil && g != nil {
			km := geo.HaversineKm(g.Latitude, g.Longitude, *d.Latitude, *d.Longitude)
			distance = &km
		}
	}

	m := &entity.PincodeMapping{
		ID:            uuid.New().String(),
		Pincode:       in.Pincode,
		DistributorID: in.DistributorID,
		DistanceKm:    distance,
		CreatedAt:     time.Now(),
	}
	if err := uc.mappings.Create(ctx, m); err != nil {
		return nil, err
	}
	return &dto.PincodeMappingResponse{
		ID:              m.ID,
		Pincode:         m.Pincode,
		DistributorID:   m.DistributorID,
		DistributorName: d.Name,
		DistanceKm:      m.DistanceKm,
	}, nil
}

// UnmapPincode removes a mapping.
func (uc *LogisticsUseCase) UnmapPincode(ctx context.Context, id string) error {
	return uc.mappings.Delete(ctx, id)
}

// SetPincodeGeo records the centroid coordinates of a pincode.
func (uc *LogisticsUseCase) SetPincodeGeo(ctx context.Context, in dto.SetPincodeGeoRequest) error {
	return uc.geos.Upsert(ctx, &entity.PincodeGeo{
		Pincode:   in.Pincode,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	})
}

// CheckServiceability answers whether a pincode can be delivered to, using
// the same nearest-distributor and radius logic as the quote engine but
// without rule caps (those depend on product volume and channel).
func (uc *LogisticsUseCase) CheckServiceability(ctx context.Context, pincode string) (*dto.ServiceabilityResponse, error) {
	mappings, err := uc.mappings.ListByPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return &dto.ServiceabilityResponse{
			Pincode: pincode,
			Reason:  "pincode not serviceable",
		}, nil
	}

	nearest := mappings[0]
	for _, m := range mappings[1:] {
		if m.DistanceKm == nil {
			continue
		}
		if nearest.DistanceKm == nil || *m.DistanceKm < *nearest.DistanceKm {
			nearest = m
		}
	}
	d := nearest.Distributor

	var distance *float64
	pinGeo, err := uc.geos.Get(ctx, pincode)
	if err != nil {
		return nil, err
	}
	switch {
	case pinGeo != nil && d.Latitude != nil && d.Longitude != nil:
		km := geo.HaversineKm(pinGeo.Latitude, pinGeo.Longitude, *d.Latitude, *d.Longitude)
		distance = &km
	case nearest.DistanceKm != nil:
		km := *nearest.DistanceKm
		distance = &km
	}

	resp := &dto.ServiceabilityResponse{
		Pincode:         pincode,
		DistributorID:   d.ID,
		DistributorName: d.Name,
		DistanceKm:      distance,
	}
	if distance == nil || *distance > d.ServiceRadiusKm {
		resp.Reason = "distance exceeds allowed radius"
		return resp, nil
	}
	resp.Serviceable = true
	return resp, nil
}

func toDistributorResponse(d *entity.Distributor) *dto.DistributorResponse {
	return &dto.DistributorResponse{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		City:            d.City,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		ServiceRadiusKm: d.ServiceRadiusKm,
		IsActive:        d.IsActive,
		CreatedAt:       d.CreatedAt,
	}
}
