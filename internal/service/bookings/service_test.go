package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservasalas/BookingService/internal/domain"
	bookingRepo "github.com/reservasalas/BookingService/internal/infra/storage/booking"
	"github.com/reservasalas/BookingService/pkg/ptr"
)

var testLoc = time.FixedZone("-04", -4*3600)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	bookings []*domain.Booking

	deletedIDs []int64
	byDateArg  *time.Time
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) GetAll(context.Context) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	f.byDateArg = &date
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.BookingDate.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	for _, b := range f.bookings {
		if b.ID == id {
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func TestGetByID(t *testing.T) {
	booking := &domain.Booking{
		ID:               7,
		InfrastructureID: ptr.Ptr(int64(1)),
		EquipmentIDs:     []int64{10, 10},
		RequesterName:    "Maria Silva",
		BookingDate:      time.Date(2025, 10, 15, 0, 0, 0, 0, testLoc),
		StartTime:        "10:00",
	}
	svc := NewService(&fakeRepo{bookings: []*domain.Booking{booking}}, testLoc, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, []int64{10, 10}, resp.EquipmentIDs)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, testLoc)
	other := time.Date(2025, 10, 16, 0, 0, 0, 0, testLoc)
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 1, RequesterName: "Maria Silva", BookingDate: day, StartTime: "10:00"},
		{ID: 2, RequesterName: "João Souza", BookingDate: other, StartTime: "09:00"},
	}}
	svc := NewService(repo, testLoc, nopLogger{})

	t.Run("all bookings without date", func(t *testing.T) {
		resp, err := svc.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filters by normalized date", func(t *testing.T) {
		resp, err := svc.List(context.Background(), ptr.Ptr("2025-10-15T18:30:00Z"))
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)

		// В репозиторий уходит полночь опорного пояса
		require.NotNil(t, repo.byDateArg)
		assert.True(t, repo.byDateArg.Equal(day))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.List(context.Background(), ptr.Ptr("15/10/2025"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 7, RequesterName: "Maria Silva"},
	}}
	svc := NewService(repo, testLoc, nopLogger{})

	t.Run("deletes existing booking", func(t *testing.T) {
		err := svc.Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, repo.deletedIDs)
	})

	t.Run("not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
