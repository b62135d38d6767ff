package logistics

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

type fakeDistributorRepo struct {
	byID map[string]*entity.Distributor
}

var _ repository.DistributorRepository = (*fakeDistributorRepo)(nil)

func (f *fakeDistributorRepo) Create(_ context.Context, d *entity.Distributor) error {
	f.byID[d.ID] = d
	return nil
}

func (f *fakeDistributorRepo) GetByID(_ context.Context, id string) (*entity.Distributor, error) {
	return f.byID[id], nil
}

func (f *fakeDistributorRepo) Update(_ context.Context, d *entity.Distributor) error {
	f.byID[d.ID] = d
	return nil
}

func (f *fakeDistributorRepo) List(_ context.Context, _, _ int) ([]*entity.Distributor, error) {
	var out []*entity.Distributor
	for _, d := range f.byID {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDistributorRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func seededLogistics(t *testing.T) (*LogisticsUseCase, *fakeDistributorRepo) {
	t.Helper()
	repo := &fakeDistributorRepo{byID: map[string]*entity.Distributor{
		"d1": {
			ID: "d1", Name: "Thane Depot", City: "Thane",
			ServiceRadiusKm: 10, IsActive: true, CreatedAt: time.Now(),
		},
	}}
	return NewLogisticsUseCase(repo, nil, nil), repo
}

func TestDeleteDistributor_RemovesRow(t *testing.T) {
	uc, repo := seededLogistics(t)

	require.NoError(t, uc.DeleteDistributor(context.Background(), "d1"))
	assert.Empty(t, repo.byID)
}

func TestUpdateDistributor_NonPositiveRadiusRejected(t *testing.T) {
	uc, repo := seededLogistics(t)
	zero := 0.0

	out, err := uc.UpdateDistributor(context.Background(), "d1", dto.UpdateDistributorRequest{
		ServiceRadiusKm: &zero,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10.0, repo.byID["d1"].ServiceRadiusKm)
}
