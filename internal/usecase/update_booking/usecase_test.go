package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
	bookingRepo "github.com/reservasalas/BookingService/internal/infra/storage/booking"
	"github.com/reservasalas/BookingService/pkg/ptr"
	"github.com/reservasalas/BookingService/pkg/types"
)

var testLoc = time.FixedZone("-04", -4*3600)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	stored  *domain.Booking
	updated *domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.stored == nil || f.stored.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, booking *domain.Booking) error {
	copied := *booking
	f.updated = &copied
	return nil
}

type fakeChecker struct {
	slotErr     error
	checkedSlot *availability.CheckRequest
}

func (f *fakeChecker) CheckSlot(_ context.Context, req availability.CheckRequest) error {
	f.checkedSlot = &req
	return f.slotErr
}

func (f *fakeChecker) Location() *time.Location {
	return testLoc
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func storedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               7,
		InfrastructureID: ptr.Ptr(int64(1)),
		EquipmentIDs:     []int64{10},
		RequesterName:    "Maria Silva",
		BookingDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, testLoc),
		StartTime:        "10:00",
		Description:      "planejamento",
	}
}

func TestExecute_DescriptionOnlyUpdateSkipsConflictCheck(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	checker := &fakeChecker{}
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:          7,
		Description: ptr.Ptr("retrospectiva"),
	})
	require.NoError(t, err)

	assert.Nil(t, checker.checkedSlot)
	assert.Equal(t, "retrospectiva", resp.Description)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "retrospectiva", repo.updated.Description)
	// Остальные поля не тронуты
	assert.Equal(t, types.TimeString("10:00"), repo.updated.StartTime)
	assert.Equal(t, []int64{10}, repo.updated.EquipmentIDs)
}

func TestExecute_RequesterOnlyUpdateSkipsConflictCheck(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	checker := &fakeChecker{}
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:            7,
		RequesterName: ptr.Ptr("João Souza"),
	})
	require.NoError(t, err)
	assert.Nil(t, checker.checkedSlot)
}

func TestExecute_TimeChangeRunsConflictCheckExcludingSelf(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	checker := &fakeChecker{}
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})

	newTime := types.TimeString("14:00")
	resp, err := uc.Execute(context.Background(), &Request{
		ID:        7,
		StartTime: &newTime,
	})
	require.NoError(t, err)

	require.NotNil(t, checker.checkedSlot)
	assert.Equal(t, types.TimeString("14:00"), checker.checkedSlot.StartTime)
	require.NotNil(t, checker.checkedSlot.ExcludeBookingID)
	assert.Equal(t, int64(7), *checker.checkedSlot.ExcludeBookingID)

	// Проверка идет со слитыми значениями: старые ресурсы + новое время
	require.NotNil(t, checker.checkedSlot.InfrastructureID)
	assert.Equal(t, int64(1), *checker.checkedSlot.InfrastructureID)
	assert.Equal(t, []int64{10}, checker.checkedSlot.EquipmentIDs)

	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
}

func TestExecute_SameValuesSkipConflictCheck(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	checker := &fakeChecker{}
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})

	sameTime := types.TimeString("10:00")
	_, err := uc.Execute(context.Background(), &Request{
		ID:               7,
		StartTime:        &sameTime,
		InfrastructureID: ptr.Ptr(int64(1)),
		EquipmentIDs:     []int64{10},
		Date:             ptr.Ptr("2025-10-15"),
	})
	require.NoError(t, err)
	assert.Nil(t, checker.checkedSlot)
}

func TestExecute_ConflictBlocksUpdate(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	checker := &fakeChecker{slotErr: availability.ErrInfrastructureConflict}
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})

	newTime := types.TimeString("14:00")
	_, err := uc.Execute(context.Background(), &Request{ID: 7, StartTime: &newTime})

	assert.ErrorIs(t, err, availability.ErrInfrastructureConflict)
	assert.Nil(t, repo.updated)
}

func TestExecute_EquipmentChangeDetection(t *testing.T) {
	t.Run("reordered multiset is unchanged", func(t *testing.T) {
		assert.False(t, equipmentChanged([]int64{10, 11}, []int64{11, 10}))
	})

	t.Run("extra unit is a change", func(t *testing.T) {
		assert.True(t, equipmentChanged([]int64{10}, []int64{10, 10}))
	})

	t.Run("different id is a change", func(t *testing.T) {
		assert.True(t, equipmentChanged([]int64{10}, []int64{11}))
	})
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeChecker{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{stored: storedBooking()}, &fakeChecker{}, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	t.Run("non-positive id", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty requester name", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ID: 7, RequesterName: ptr.Ptr("")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ID: 7, Date: ptr.Ptr("15/10/2025")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
