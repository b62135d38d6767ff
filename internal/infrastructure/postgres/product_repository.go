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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository on PostgreSQL (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, volume_ml, units_per_box, is_active, created_at, updated_at`

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, volume_ml, units_per_box, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.VolumeML,
		product.UnitsPerBox, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID. Returns (nil, nil) when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU fetches a product by its catalog code. Returns (nil, nil) when absent.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Update rewrites the mutable fields of a product. SKU is immutable.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, volume_ml = $3, units_per_box = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.VolumeML, product.UnitsPerBox,
		product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List returns products with pagination, newest first.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.VolumeML, &p.UnitsPerBox,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type pgxScanner interface {
	Scan(dest ...any) error
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.CostComponentRepository = (*CostComponentRepo)(nil)

// CostComponentRepo implements CostComponentRepository on PostgreSQL.
type CostComponentRepo struct {
	q Querier
}

// NewCostComponentRepository builds the persistence adapter for cost components.
func NewCostComponentRepository(q Querier) *CostComponentRepo {
	return &CostComponentRepo{q: q}
}

const componentColumns = `id, product_id, name, cost_per_unit, is_active, created_at, updated_at`

// Create persists a new cost component.
func (r *CostComponentRepo) Create(ctx context.Context, component *entity.CostComponent) error {
	query := `
		INSERT INTO cost_components (id, product_id, name, cost_per_unit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		component.ID, component.ProductID, component.Name, component.CostPerUnit,
		component.IsActive, component.CreatedAt, component.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost component: %w", err)
	}
	return nil
}

// GetByID fetches a cost component by ID. Returns (nil, nil) when absent.
func (r *CostComponentRepo) GetByID(ctx context.Context, id string) (*entity.CostComponent, error) {
	query := `SELECT ` + componentColumns + ` FROM cost_components WHERE id = $1`
	var c entity.CostComponent
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ProductID, &c.Name, &c.CostPerUnit, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost component: %w", err)
	}
	return &c, nil
}

// ListActiveByProduct returns the active components the engine sums for the
// production cost.
func (r *CostComponentRepo) ListActiveByProduct(ctx context.Context, productID string) ([]*entity.CostComponent, error) {
	query := `SELECT ` + componentColumns + ` FROM cost_components
		WHERE product_id = $1 AND is_active = true ORDER BY created_at ASC`
	return r.listComponents(ctx, query, productID)
}

// ListByProduct returns all components of a product, active or not.
func (r *CostComponentRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.CostComponent, error) {
	query := `SELECT ` + componentColumns + ` FROM cost_components
		WHERE product_id = $1 ORDER BY created_at ASC`
	return r.listComponents(ctx, query, productID)
}

func (r *CostComponentRepo) listComponents(ctx context.Context, query string, args ...any) ([]*entity.CostComponent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cost components: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostComponent
	for rows.Next() {
		var c entity.CostComponent
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Name, &c.CostPerUnit, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cost component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update rewrites a cost component.
func (r *CostComponentRepo) Update(ctx context.Context, component *entity.CostComponent) error {
	query := `
		UPDATE cost_components SET name = $2, cost_per_unit = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		component.ID, component.Name, component.CostPerUnit, component.IsActive, component.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cost component: %w", err)
	}
	return nil
}

// Delete removes a cost component by ID.
func (r *CostComponentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cost_components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cost component: %w", err)
	}
	return nil
}
