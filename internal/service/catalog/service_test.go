package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservasalas/BookingService/internal/domain"
	catalogRepo "github.com/reservasalas/BookingService/internal/infra/storage/catalog"
	"github.com/reservasalas/BookingService/internal/service/catalog/models"
	"github.com/reservasalas/BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalogRepo struct {
	infrastructure map[int64]*domain.Infrastructure
	equipment      map[int64]*domain.Equipment

	createErr   error
	deletedIDs  []int64
	nextID      int64
	updateCalls int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		infrastructure: map[int64]*domain.Infrastructure{},
		equipment:      map[int64]*domain.Equipment{},
		nextID:         1,
	}
}

func (f *fakeCatalogRepo) CreateInfrastructure(_ context.Context, infra *domain.Infrastructure) (*domain.Infrastructure, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	infra.ID = f.nextID
	f.nextID++
	f.infrastructure[infra.ID] = infra
	return infra, nil
}

func (f *fakeCatalogRepo) GetInfrastructureByID(_ context.Context, id int64) (*domain.Infrastructure, error) {
	infra, ok := f.infrastructure[id]
	if !ok {
		return nil, catalogRepo.ErrInfrastructureNotFound
	}
	copied := *infra
	return &copied, nil
}

func (f *fakeCatalogRepo) ListInfrastructure(context.Context) ([]*domain.Infrastructure, error) {
	result := make([]*domain.Infrastructure, 0, len(f.infrastructure))
	for _, infra := range f.infrastructure {
		result = append(result, infra)
	}
	return result, nil
}

func (f *fakeCatalogRepo) UpdateInfrastructure(_ context.Context, infra *domain.Infrastructure) error {
	if _, ok := f.infrastructure[infra.ID]; !ok {
		return catalogRepo.ErrInfrastructureNotFound
	}
	f.updateCalls++
	f.infrastructure[infra.ID] = infra
	return nil
}

func (f *fakeCatalogRepo) DeleteInfrastructure(_ context.Context, id int64) error {
	if _, ok := f.infrastructure[id]; !ok {
		return catalogRepo.ErrInfrastructureNotFound
	}
	delete(f.infrastructure, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeCatalogRepo) CreateEquipment(_ context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	equipment.ID = f.nextID
	f.nextID++
	f.equipment[equipment.ID] = equipment
	return equipment, nil
}

func (f *fakeCatalogRepo) GetEquipmentByID(_ context.Context, id int64) (*domain.Equipment, error) {
	equipment, ok := f.equipment[id]
	if !ok {
		return nil, catalogRepo.ErrEquipmentNotFound
	}
	copied := *equipment
	return &copied, nil
}

func (f *fakeCatalogRepo) ListEquipment(context.Context) ([]*domain.Equipment, error) {
	result := make([]*domain.Equipment, 0, len(f.equipment))
	for _, equipment := range f.equipment {
		result = append(result, equipment)
	}
	return result, nil
}

func (f *fakeCatalogRepo) UpdateEquipment(_ context.Context, equipment *domain.Equipment) error {
	if _, ok := f.equipment[equipment.ID]; !ok {
		return catalogRepo.ErrEquipmentNotFound
	}
	f.updateCalls++
	f.equipment[equipment.ID] = equipment
	return nil
}

func (f *fakeCatalogRepo) DeleteEquipment(_ context.Context, id int64) error {
	if _, ok := f.equipment[id]; !ok {
		return catalogRepo.ErrEquipmentNotFound
	}
	delete(f.equipment, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeUsage struct {
	infraInUse     map[int64]bool
	equipmentInUse map[int64]bool
}

func (f *fakeUsage) HasByInfrastructure(_ context.Context, id int64) (bool, error) {
	return f.infraInUse[id], nil
}

func (f *fakeUsage) HasByEquipment(_ context.Context, id int64) (bool, error) {
	return f.equipmentInUse[id], nil
}

func newService(repo *fakeCatalogRepo, usage *fakeUsage) *Service {
	if usage == nil {
		usage = &fakeUsage{infraInUse: map[int64]bool{}, equipmentInUse: map[int64]bool{}}
	}
	return NewService(repo, usage, nopLogger{})
}

func TestCreateInfrastructure(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with trimmed name", func(t *testing.T) {
		svc := newService(newFakeCatalogRepo(), nil)
		resp, err := svc.CreateInfrastructure(ctx, &models.CreateInfrastructureRequest{
			Name: "  sala de reunião  ", Description: "sala principal",
		})
		require.NoError(t, err)
		assert.Equal(t, "sala de reunião", resp.Name)
		assert.NotZero(t, resp.ID)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := newService(newFakeCatalogRepo(), nil)
		_, err := svc.CreateInfrastructure(ctx, &models.CreateInfrastructureRequest{Name: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate name surfaces as ErrNameTaken", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.createErr = catalogRepo.ErrNameTaken
		svc := newService(repo, nil)
		_, err := svc.CreateInfrastructure(ctx, &models.CreateInfrastructureRequest{Name: "auditório"})
		assert.ErrorIs(t, err, ErrNameTaken)
	})
}

func TestDeleteInfrastructure(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while referenced by bookings", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.infrastructure[1] = &domain.Infrastructure{ID: 1, Name: "auditório"}
		usage := &fakeUsage{infraInUse: map[int64]bool{1: true}, equipmentInUse: map[int64]bool{}}

		err := newService(repo, usage).DeleteInfrastructure(ctx, 1)
		assert.ErrorIs(t, err, ErrInfrastructureInUse)
		assert.Empty(t, repo.deletedIDs)
	})

	t.Run("deletes when unreferenced", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.infrastructure[1] = &domain.Infrastructure{ID: 1, Name: "auditório"}

		err := newService(repo, nil).DeleteInfrastructure(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.deletedIDs)
	})

	t.Run("missing id", func(t *testing.T) {
		err := newService(newFakeCatalogRepo(), nil).DeleteInfrastructure(ctx, 99)
		assert.ErrorIs(t, err, ErrInfrastructureNotFound)
	})
}

func TestCreateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with quantity", func(t *testing.T) {
		svc := newService(newFakeCatalogRepo(), nil)
		resp, err := svc.CreateEquipment(ctx, &models.CreateEquipmentRequest{Name: "projetor", Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Quantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		svc := newService(newFakeCatalogRepo(), nil)
		_, err := svc.CreateEquipment(ctx, &models.CreateEquipmentRequest{Name: "projetor", Quantity: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.equipment[5] = &domain.Equipment{ID: 5, Name: "projetor", Description: "full hd", Quantity: 2}
		svc := newService(repo, nil)

		resp, err := svc.UpdateEquipment(ctx, 5, &models.UpdateEquipmentRequest{Quantity: ptr.Ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Quantity)
		assert.Equal(t, "projetor", resp.Name)
		assert.Equal(t, "full hd", resp.Description)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.equipment[5] = &domain.Equipment{ID: 5, Name: "projetor", Quantity: 2}
		svc := newService(repo, nil)

		_, err := svc.UpdateEquipment(ctx, 5, &models.UpdateEquipmentRequest{Quantity: ptr.Ptr(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while referenced by bookings", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.equipment[5] = &domain.Equipment{ID: 5, Name: "projetor", Quantity: 2}
		usage := &fakeUsage{infraInUse: map[int64]bool{}, equipmentInUse: map[int64]bool{5: true}}

		err := newService(repo, usage).DeleteEquipment(ctx, 5)
		assert.ErrorIs(t, err, ErrEquipmentInUse)
		assert.Empty(t, repo.deletedIDs)
	})

	t.Run("deletes when unreferenced", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.equipment[5] = &domain.Equipment{ID: 5, Name: "projetor", Quantity: 2}

		err := newService(repo, nil).DeleteEquipment(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, repo.deletedIDs)
	})
}
