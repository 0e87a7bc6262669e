package catalog

import (
	"context"

	"github.com/reservasalas/BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога ресурсов
type CatalogRepository interface {
	CreateInfrastructure(ctx context.Context, infra *domain.Infrastructure) (*domain.Infrastructure, error)
	GetInfrastructureByID(ctx context.Context, id int64) (*domain.Infrastructure, error)
	ListInfrastructure(ctx context.Context) ([]*domain.Infrastructure, error)
	UpdateInfrastructure(ctx context.Context, infra *domain.Infrastructure) error
	DeleteInfrastructure(ctx context.Context, id int64) error

	CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error
}

// BookingRepository интерфейс для проверки использования ресурса бронированиями
type BookingRepository interface {
	HasByInfrastructure(ctx context.Context, infrastructureID int64) (bool, error)
	HasByEquipment(ctx context.Context, equipmentID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
