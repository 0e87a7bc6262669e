package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservasalas/BookingService/internal/domain"
	catalogRepo "github.com/reservasalas/BookingService/internal/infra/storage/catalog"
	"github.com/reservasalas/BookingService/pkg/ptr"
	"github.com/reservasalas/BookingService/pkg/types"
)

// Тестовое окружение: зона -04 (как America/Manaus), минимум 60 минут
var testLoc = time.FixedZone("-04", -4*3600)

const testMinLead = 60

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, date time.Time, startTime types.TimeString, excludeID *int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if !b.BookingDate.Equal(date) || b.StartTime != startTime {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeCatalogRepo struct {
	infrastructure []*domain.Infrastructure
	equipment      []*domain.Equipment
}

func (f *fakeCatalogRepo) ListInfrastructure(context.Context) ([]*domain.Infrastructure, error) {
	return f.infrastructure, nil
}

func (f *fakeCatalogRepo) ListEquipment(context.Context) ([]*domain.Equipment, error) {
	return f.equipment, nil
}

func (f *fakeCatalogRepo) GetInfrastructureByID(_ context.Context, id int64) (*domain.Infrastructure, error) {
	for _, i := range f.infrastructure {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, catalogRepo.ErrInfrastructureNotFound
}

func (f *fakeCatalogRepo) GetEquipmentByID(_ context.Context, id int64) (*domain.Equipment, error) {
	for _, e := range f.equipment {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, catalogRepo.ErrEquipmentNotFound
}

func newTestService(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, now time.Time) *Service {
	svc := NewService(bookings, catalog, testLoc, testMinLead, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, testLoc)
}

// 2025-09-01 это понедельник, 2025-09-02 - вторник
var (
	monday  = day(2025, 9, 1)
	tuesday = day(2025, 9, 2)
)

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		infrastructure: []*domain.Infrastructure{
			{ID: 1, Name: "sala de reunião"},
			{ID: 2, Name: "auditório"},
		},
		equipment: []*domain.Equipment{
			{ID: 10, Name: "projetor", Quantity: 2},
			{ID: 11, Name: "notebook", Quantity: 1},
		},
	}
}

func TestComputeAvailability_ExcludesBookedInfrastructure(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, InfrastructureID: ptr.Ptr(int64(2)), BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))

	result, err := svc.ComputeAvailability(context.Background(), tuesday, "10:00", false)
	require.NoError(t, err)

	ids := infraIDs(result)
	assert.Contains(t, ids, int64(1))
	assert.NotContains(t, ids, int64(2))
}

func TestComputeAvailability_RestrictionRules(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, defaultCatalog(), monday.Add(8*time.Hour))
	ctx := context.Background()

	t.Run("monday morning hides meeting room", func(t *testing.T) {
		result, err := svc.ComputeAvailability(ctx, monday, "09:00", false)
		require.NoError(t, err)
		assert.NotContains(t, infraIDs(result), int64(1))
		assert.Contains(t, infraIDs(result), int64(2))
	})

	t.Run("admin sees meeting room on monday morning", func(t *testing.T) {
		result, err := svc.ComputeAvailability(ctx, monday, "09:00", true)
		require.NoError(t, err)
		assert.Contains(t, infraIDs(result), int64(1))
	})

	t.Run("monday afternoon includes meeting room", func(t *testing.T) {
		result, err := svc.ComputeAvailability(ctx, monday, "13:00", false)
		require.NoError(t, err)
		assert.Contains(t, infraIDs(result), int64(1))
	})

	t.Run("tuesday morning includes meeting room", func(t *testing.T) {
		result, err := svc.ComputeAvailability(ctx, tuesday, "09:00", false)
		require.NoError(t, err)
		assert.Contains(t, infraIDs(result), int64(1))
	})
}

func TestComputeAvailability_EquipmentUnits(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, EquipmentIDs: []int64{10}, BookingDate: tuesday, StartTime: "10:00"},
		{ID: 2, EquipmentIDs: []int64{11}, BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))

	result, err := svc.ComputeAvailability(context.Background(), tuesday, "10:00", false)
	require.NoError(t, err)

	// У проектора осталась одна единица из двух, ноутбук исчерпан и не попадает в ответ
	require.Len(t, result.FreeEquipment, 1)
	assert.Equal(t, int64(10), result.FreeEquipment[0].Equipment.ID)
	assert.Equal(t, 1, result.FreeEquipment[0].AvailableUnits)
	assert.Equal(t, 1, result.FreeEquipment[0].UsedUnits)
}

func TestComputeAvailability_Idempotent(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, InfrastructureID: ptr.Ptr(int64(1)), EquipmentIDs: []int64{10}, BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))
	ctx := context.Background()

	first, err := svc.ComputeAvailability(ctx, tuesday, "10:00", false)
	require.NoError(t, err)
	second, err := svc.ComputeAvailability(ctx, tuesday, "10:00", false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAvailability_DeleteFreesCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, InfrastructureID: ptr.Ptr(int64(2)), EquipmentIDs: []int64{11}, BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))
	ctx := context.Background()

	before, err := svc.ComputeAvailability(ctx, tuesday, "10:00", false)
	require.NoError(t, err)
	assert.NotContains(t, infraIDs(before), int64(2))

	// Удаление бронирования сразу освобождает ресурсы
	bookings.bookings = nil

	after, err := svc.ComputeAvailability(ctx, tuesday, "10:00", false)
	require.NoError(t, err)
	assert.Contains(t, infraIDs(after), int64(2))
	assert.Len(t, after.FreeEquipment, 2)
}

func TestCheckSlot_Infrastructure(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, InfrastructureID: ptr.Ptr(int64(2)), BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))
	ctx := context.Background()

	t.Run("conflict on booked infrastructure", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{
			Date: tuesday, StartTime: "10:00", InfrastructureID: ptr.Ptr(int64(2)),
		})
		assert.ErrorIs(t, err, ErrInfrastructureConflict)
	})

	t.Run("free infrastructure passes", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{
			Date: tuesday, StartTime: "10:00", InfrastructureID: ptr.Ptr(int64(1)),
		})
		assert.NoError(t, err)
	})

	t.Run("other slot passes", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{
			Date: tuesday, StartTime: "11:00", InfrastructureID: ptr.Ptr(int64(2)),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown infrastructure", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{
			Date: tuesday, StartTime: "10:00", InfrastructureID: ptr.Ptr(int64(99)),
		})
		assert.ErrorIs(t, err, ErrInfrastructureNotFound)
	})

	t.Run("updated booking does not conflict with itself", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{
			Date: tuesday, StartTime: "10:00", InfrastructureID: ptr.Ptr(int64(2)),
			ExcludeBookingID: ptr.Ptr(int64(1)),
		})
		assert.NoError(t, err)
	})
}

func TestCheckSlot_EquipmentCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, EquipmentIDs: []int64{10}, BookingDate: tuesday, StartTime: "10:00"},
	}}
	svc := newTestService(bookings, defaultCatalog(), monday.Add(8*time.Hour))
	ctx := context.Background()

	t.Run("one remaining unit passes", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{Date: tuesday, StartTime: "10:00", EquipmentIDs: []int64{10}})
		assert.NoError(t, err)
	})

	t.Run("requesting beyond capacity fails with equipment name", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{Date: tuesday, StartTime: "10:00", EquipmentIDs: []int64{10, 10}})
		assert.ErrorIs(t, err, ErrEquipmentUnavailable)
		assert.Contains(t, err.Error(), "projetor")
	})

	t.Run("duplicates within a request consume capacity", func(t *testing.T) {
		free := newTestService(&fakeBookingRepo{}, defaultCatalog(), monday.Add(8*time.Hour))

		// quantity=2: две единицы в одном запросе проходят, три - нет
		assert.NoError(t, free.CheckSlot(ctx, CheckRequest{Date: tuesday, StartTime: "10:00", EquipmentIDs: []int64{10, 10}}))
		assert.ErrorIs(t,
			free.CheckSlot(ctx, CheckRequest{Date: tuesday, StartTime: "10:00", EquipmentIDs: []int64{10, 10, 10}}),
			ErrEquipmentUnavailable)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		err := svc.CheckSlot(ctx, CheckRequest{Date: tuesday, StartTime: "10:00", EquipmentIDs: []int64{99}})
		assert.ErrorIs(t, err, ErrEquipmentNotFound)
	})
}

func TestEnforceLeadTime(t *testing.T) {
	// Сейчас понедельник 10:00 в опорной зоне
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, testLoc)
	svc := newTestService(&fakeBookingRepo{}, defaultCatalog(), now)

	t.Run("same day 30 minutes ahead rejected", func(t *testing.T) {
		err := svc.EnforceLeadTime(monday, "10:30", false)
		assert.ErrorIs(t, err, ErrLeadTimeTooShort)

		var leadErr *LeadTimeError
		require.ErrorAs(t, err, &leadErr)
		assert.Equal(t, testMinLead, leadErr.MinimumMinutes)
		assert.Equal(t, types.TimeString("10:30"), leadErr.StartTime)
	})

	t.Run("admin bypasses", func(t *testing.T) {
		assert.NoError(t, svc.EnforceLeadTime(monday, "10:30", true))
	})

	t.Run("65 minutes ahead passes", func(t *testing.T) {
		assert.NoError(t, svc.EnforceLeadTime(monday, "11:05", false))
	})

	t.Run("exactly the minimum passes", func(t *testing.T) {
		assert.NoError(t, svc.EnforceLeadTime(monday, "11:00", false))
	})

	t.Run("past slot rejected", func(t *testing.T) {
		err := svc.EnforceLeadTime(monday, "09:00", false)
		assert.ErrorIs(t, err, ErrLeadTimeTooShort)
	})

	t.Run("future day skips the check", func(t *testing.T) {
		assert.NoError(t, svc.EnforceLeadTime(tuesday, "10:30", false))
	})
}

func TestCheckSlot_RepoError(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, defaultCatalog(), monday.Add(8*time.Hour))
	svc.bookingRepo = failingBookingRepo{}

	err := svc.CheckSlot(context.Background(), CheckRequest{Date: tuesday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInternal)
}

type failingBookingRepo struct{}

func (failingBookingRepo) GetBySlot(context.Context, time.Time, types.TimeString, *int64) ([]*domain.Booking, error) {
	return nil, errors.New("connection refused")
}

func infraIDs(a *domain.Availability) []int64 {
	ids := make([]int64, 0, len(a.FreeInfrastructure))
	for _, i := range a.FreeInfrastructure {
		ids = append(ids, i.ID)
	}
	return ids
}
