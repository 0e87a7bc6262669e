package update_booking

import (
	"context"
	"time"

	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	CheckSlot(ctx context.Context, req availability.CheckRequest) error
	Location() *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
