package infrastructure

import (
	"context"

	"github.com/reservasalas/BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateInfrastructure(ctx context.Context, req *models.CreateInfrastructureRequest) (*models.InfrastructureResponse, error)
	GetInfrastructure(ctx context.Context, id int64) (*models.InfrastructureResponse, error)
	ListInfrastructure(ctx context.Context) (*models.InfrastructureListResponse, error)
	UpdateInfrastructure(ctx context.Context, id int64, req *models.UpdateInfrastructureRequest) (*models.InfrastructureResponse, error)
	DeleteInfrastructure(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
