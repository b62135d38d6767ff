package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func seededCatalog(t *testing.T) (*CatalogUseCase, *fakeProductRepo) {
	t.Helper()
	repo := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": {
			ID: "p1", SKU: "JAL-500", Name: "Jalveda 500ml", VolumeML: 500,
			UnitsPerBox: 12, IsActive: true, CreatedAt: time.Now(),
		},
	}}
	return NewCatalogUseCase(repo, nil, nil), repo
}

func intptr(v int) *int       { return &v }
func strptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_PartialUpdate(t *testing.T) {
	uc, repo := seededCatalog(t)

	out, err := uc.UpdateProduct(context.Background(), "p1", dto.UpdateProductRequest{
		Name:        strptr("Jalveda 500ml Sparkling"),
		UnitsPerBox: intptr(24),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Jalveda 500ml Sparkling", out.Name)
	assert.Equal(t, 24, out.UnitsPerBox)
	assert.Equal(t, 500, out.VolumeML, "untouched field keeps its value")
	assert.Equal(t, 24, repo.byID["p1"].UnitsPerBox)
}

func TestUpdateProduct_ZeroUnitsPerBoxRejected(t *testing.T) {
	uc, repo := seededCatalog(t)

	out, err := uc.UpdateProduct(context.Background(), "p1", dto.UpdateProductRequest{
		UnitsPerBox: intptr(0),
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 12, repo.byID["p1"].UnitsPerBox, "stored row must be untouched")
}

func TestUpdateProduct_NegativeVolumeRejected(t *testing.T) {
	uc, repo := seededCatalog(t)

	out, err := uc.UpdateProduct(context.Background(), "p1", dto.UpdateProductRequest{
		VolumeML: intptr(-250),
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 500, repo.byID["p1"].VolumeML)
}

func TestUpdateProduct_UnknownIDReturnsNil(t *testing.T) {
	uc, _ := seededCatalog(t)

	out, err := uc.UpdateProduct(context.Background(), "ghost", dto.UpdateProductRequest{
		Name: strptr("renamed"),
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}
