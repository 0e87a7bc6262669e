package get_availability

import (
	"context"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/types"
)

// AvailabilityEngine интерфейс расчёта свободных ресурсов слота
type AvailabilityEngine interface {
	ComputeAvailability(ctx context.Context, date time.Time, startTime types.TimeString, isAdmin bool) (*domain.Availability, error)
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
