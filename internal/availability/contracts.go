package availability

import (
	"context"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBySlot получает все бронирования на нормализованную дату и время слота
	// excludeID исключает бронирование из выборки (используется при обновлении)
	GetBySlot(ctx context.Context, date time.Time, startTime types.TimeString, excludeID *int64) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога ресурсов
type CatalogRepository interface {
	ListInfrastructure(ctx context.Context) ([]*domain.Infrastructure, error)
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetInfrastructureByID(ctx context.Context, id int64) (*domain.Infrastructure, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
