package create_booking

import (
	"context"
	"time"

	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityChecker интерфейс проверки доступности слота и политики времени
type AvailabilityChecker interface {
	CheckSlot(ctx context.Context, req availability.CheckRequest) error
	EnforceLeadTime(date time.Time, startTime types.TimeString, isAdmin bool) error
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
