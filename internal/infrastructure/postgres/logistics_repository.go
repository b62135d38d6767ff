package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

// DistributorRepo implements DistributorRepository on PostgreSQL.
type DistributorRepo struct {
	q Querier
}

// NewDistributorRepository builds the persistence adapter for distributors.
func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

const distributorColumns = `id, name, phone, city, latitude, longitude, service_radius_km, is_active, created_at, updated_at`

// Create persists a new distributor.
func (r *DistributorRepo) Create(ctx context.Context, distributor *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, phone, city, latitude, longitude, service_radius_km, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		distributor.ID, distributor.Name, distributor.Phone, distributor.City,
		distributor.Latitude, distributor.Longitude, distributor.ServiceRadiusKm,
		distributor.IsActive, distributor.CreatedAt, distributor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

// GetByID fetches a distributor by ID. Returns (nil, nil) when absent.
func (r *DistributorRepo) GetByID(ctx context.Context, id string) (*entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1`
	var d entity.Distributor
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Phone, &d.City, &d.Latitude, &d.Longitude,
		&d.ServiceRadiusKm, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return &d, nil
}

// Update rewrites a distributor.
func (r *DistributorRepo) Update(ctx context.Context, distributor *entity.Distributor) error {
	query := `
		UPDATE distributors SET name = $2, phone = $3, city = $4, latitude = $5, longitude = $6,
			service_radius_km = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		distributor.ID, distributor.Name, distributor.Phone, distributor.City,
		distributor.Latitude, distributor.Longitude, distributor.ServiceRadiusKm,
		distributor.IsActive, distributor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

// List returns distributors with pagination.
func (r *DistributorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.City, &d.Latitude, &d.Longitude,
			&d.ServiceRadiusKm, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete removes a distributor by ID.
func (r *DistributorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distributor: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.PincodeMappingRepository = (*PincodeMappingRepo)(nil)

// PincodeMappingRepo implements PincodeMappingRepository on PostgreSQL.
type PincodeMappingRepo struct {
	q Querier
}

// NewPincodeMappingRepository builds the persistence adapter for pincode mappings.
func NewPincodeMappingRepository(q Querier) *PincodeMappingRepo {
	return &PincodeMappingRepo{q: q}
}

// Create persists a new mapping. A pincode may map to the same distributor
// only once.
func (r *PincodeMappingRepo) Create(ctx context.Context, mapping *entity.PincodeMapping) error {
	query := `
		INSERT INTO pincode_mappings (id, pincode, distributor_id, distance_km, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		mapping.ID, mapping.Pincode, mapping.DistributorID, mapping.DistanceKm, mapping.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pincode mapping: %w", err)
	}
	return nil
}

// ListByPincode returns the active-distributor mappings for a pincode with
// Distributor populated, nearest stored distance first (nulls last).
func (r *PincodeMappingRepo) ListByPincode(ctx context.Context, pincode string) ([]*entity.PincodeMapping, error) {
	query := `
		SELECT m.id, m.pincode, m.distributor_id, m.distance_km, m.created_at,
			d.id, d.name, d.phone, d.city, d.latitude, d.longitude, d.service_radius_km, d.is_active, d.created_at, d.updated_at
		FROM pincode_mappings m
		JOIN distributors d ON d.id = m.distributor_id
		WHERE m.pincode = $1 AND d.is_active = true
		ORDER BY m.distance_km ASC NULLS LAST, m.created_at ASC`
	rows, err := r.q.Query(ctx, query, pincode)
	if err != nil {
		return nil, fmt.Errorf("list pincode mappings: %w", err)
	}
	defer rows.Close()
	var list []*entity.PincodeMapping
	for rows.Next() {
		var m entity.PincodeMapping
		var d entity.Distributor
		if err := rows.Scan(
			&m.ID, &m.Pincode, &m.DistributorID, &m.DistanceKm, &m.CreatedAt,
			&d.ID, &d.Name, &d.Phone, &d.City, &d.Latitude, &d.Longitude,
			&d.ServiceRadiusKm, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pincode mapping: %w", err)
		}
		m.Distributor = &d
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete removes a mapping by ID.
func (r *PincodeMappingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM pincode_mappings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pincode mapping: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.PincodeGeoRepository = (*PincodeGeoRepo)(nil)

// PincodeGeoRepo implements PincodeGeoRepository on PostgreSQL.
type PincodeGeoRepo struct {
	q Querier
}

// NewPincodeGeoRepository builds the persistence adapter for pincode coordinates.
func NewPincodeGeoRepository(q Querier) *PincodeGeoRepo {
	return &PincodeGeoRepo{q: q}
}

// Get returns (nil, nil) when the pincode has no known coordinates.
func (r *PincodeGeoRepo) Get(ctx context.Context, pincode string) (*entity.PincodeGeo, error) {
	query := `SELECT pincode, latitude, longitude FROM pincode_geo WHERE pincode = $1`
	var g entity.PincodeGeo
	err := r.q.QueryRow(ctx, query, pincode).Scan(&g.Pincode, &g.Latitude, &g.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pincode geo: %w", err)
	}
	return &g, nil
}

// Upsert writes the coordinates of a pincode, overwriting any existing row.
func (r *PincodeGeoRepo) Upsert(ctx context.Context, geo *entity.PincodeGeo) error {
	query := `
		INSERT INTO pincode_geo (pincode, latitude, longitude)
		VALUES ($1, $2, $3)
		ON CONFLICT (pincode) DO UPDATE SET latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude`
	_, err := r.q.Exec(ctx, query, geo.Pincode, geo.Latitude, geo.Longitude)
	if err != nil {
		return fmt.Errorf("upsert pincode geo: %w", err)
	}
	return nil
}
