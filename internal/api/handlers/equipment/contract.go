package equipment

import (
	"context"

	"github.com/reservasalas/BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error)
	GetEquipment(ctx context.Context, id int64) (*models.EquipmentResponse, error)
	ListEquipment(ctx context.Context) (*models.EquipmentListResponse, error)
	UpdateEquipment(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error)
	DeleteEquipment(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
