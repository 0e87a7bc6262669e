package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reservasalas/BookingService/internal/domain"
	catalogRepo "github.com/reservasalas/BookingService/internal/infra/storage/catalog"
	"github.com/reservasalas/BookingService/internal/service/catalog/models"
)

// Service сервис каталога ресурсов: инфраструктура и оборудование
type Service struct {
	catalogRepo CatalogRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Инфраструктура

// CreateInfrastructure создает новую инфраструктуру
func (s *Service) CreateInfrastructure(ctx context.Context, req *models.CreateInfrastructureRequest) (*models.InfrastructureResponse, error) {
	s.logger.Info("CreateInfrastructure: creating infrastructure name=%s", req.Name)

	name := strings.TrimSpace(req.Name)
	if err := validateResourceName(name); err != nil {
		s.logger.Warn("CreateInfrastructure: invalid name=%q: %v", req.Name, err)
		return nil, err
	}

	infra := &domain.Infrastructure{
		Name:        name,
		Description: req.Description,
	}

	created, err := s.catalogRepo.CreateInfrastructure(ctx, infra)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNameTaken) {
			s.logger.Warn("CreateInfrastructure: name=%s already taken", name)
			return nil, ErrNameTaken
		}
		s.logger.Error("CreateInfrastructure: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateInfrastructure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateInfrastructure: successfully created infrastructure id=%d", created.ID)
	return models.FromDomainInfrastructure(created), nil
}

// GetInfrastructure получает инфраструктуру по ID
func (s *Service) GetInfrastructure(ctx context.Context, id int64) (*models.InfrastructureResponse, error) {
	s.logger.Info("GetInfrastructure: fetching infrastructure id=%d", id)

	infra, err := s.catalogRepo.GetInfrastructureByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrInfrastructureNotFound) {
			s.logger.Warn("GetInfrastructure: infrastructure id=%d not found", id)
			return nil, ErrInfrastructureNotFound
		}
		s.logger.Error("GetInfrastructure: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetInfrastructure - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInfrastructure(infra), nil
}

// ListInfrastructure получает весь список инфраструктуры
// Каждый элемент аннотирован флагом hasBookings
func (s *Service) ListInfrastructure(ctx context.Context) (*models.InfrastructureListResponse, error) {
	s.logger.Info("ListInfrastructure: fetching infrastructure list")

	items, err := s.catalogRepo.ListInfrastructure(ctx)
	if err != nil {
		s.logger.Error("ListInfrastructure: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInfrastructure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListInfrastructure: successfully fetched %d items", len(items))
	return models.FromDomainInfrastructureList(items), nil
}

// UpdateInfrastructure обновляет инфраструктуру
// Nil-поля запроса сохраняют текущие значения
func (s *Service) UpdateInfrastructure(ctx context.Context, id int64, req *models.UpdateInfrastructureRequest) (*models.InfrastructureResponse, error) {
	s.logger.Info("UpdateInfrastructure: updating infrastructure id=%d", id)

	infra, err := s.catalogRepo.GetInfrastructureByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrInfrastructureNotFound) {
			s.logger.Warn("UpdateInfrastructure: infrastructure id=%d not found", id)
			return nil, ErrInfrastructureNotFound
		}
		s.logger.Error("UpdateInfrastructure: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateInfrastructure - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateResourceName(name); err != nil {
			s.logger.Warn("UpdateInfrastructure: invalid name=%q: %v", *req.Name, err)
			return nil, err
		}
		infra.Name = name
	}
	if req.Description != nil {
		infra.Description = *req.Description
	}

	if err := s.catalogRepo.UpdateInfrastructure(ctx, infra); err != nil {
		if errors.Is(err, catalogRepo.ErrInfrastructureNotFound) {
			return nil, ErrInfrastructureNotFound
		}
		if errors.Is(err, catalogRepo.ErrNameTaken) {
			s.logger.Warn("UpdateInfrastructure: name=%s already taken", infra.Name)
			return nil, ErrNameTaken
		}
		s.logger.Error("UpdateInfrastructure: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateInfrastructure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateInfrastructure: successfully updated infrastructure id=%d", id)
	return models.FromDomainInfrastructure(infra), nil
}

// DeleteInfrastructure удаляет инфраструктуру
// Удаление запрещено, пока на неё ссылается хоть одно бронирование
func (s *Service) DeleteInfrastructure(ctx context.Context, id int64) error {
	s.logger.Info("DeleteInfrastructure: deleting infrastructure id=%d", id)

	inUse, err := s.bookingRepo.HasByInfrastructure(ctx, id)
	if err != nil {
		s.logger.Error("DeleteInfrastructure: usage check error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteInfrastructure - usage check error: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("DeleteInfrastructure: infrastructure id=%d has bookings", id)
		return ErrInfrastructureInUse
	}

	if err := s.catalogRepo.DeleteInfrastructure(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrInfrastructureNotFound) {
			s.logger.Warn("DeleteInfrastructure: infrastructure id=%d not found", id)
			return ErrInfrastructureNotFound
		}
		s.logger.Error("DeleteInfrastructure: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteInfrastructure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteInfrastructure: successfully deleted infrastructure id=%d", id)
	return nil
}

// Оборудование

// CreateEquipment создает новое оборудование
// Quantity задаёт число единиц, которые можно занять одновременно в одном слоте
func (s *Service) CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("CreateEquipment: creating equipment name=%s quantity=%d", req.Name, req.Quantity)

	name := strings.TrimSpace(req.Name)
	if err := validateResourceName(name); err != nil {
		s.logger.Warn("CreateEquipment: invalid name=%q: %v", req.Name, err)
		return nil, err
	}
	if req.Quantity < domain.MinEquipmentQuantity {
		s.logger.Warn("CreateEquipment: invalid quantity=%d", req.Quantity)
		return nil, fmt.Errorf("%w: quantity must be non-negative", ErrInvalidInput)
	}

	equipment := &domain.Equipment{
		Name:        name,
		Description: req.Description,
		Quantity:    req.Quantity,
	}

	created, err := s.catalogRepo.CreateEquipment(ctx, equipment)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNameTaken) {
			s.logger.Warn("CreateEquipment: name=%s already taken", name)
			return nil, ErrNameTaken
		}
		s.logger.Error("CreateEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEquipment: successfully created equipment id=%d", created.ID)
	return models.FromDomainEquipment(created), nil
}

// GetEquipment получает оборудование по ID
func (s *Service) GetEquipment(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	s.logger.Info("GetEquipment: fetching equipment id=%d", id)

	equipment, err := s.catalogRepo.GetEquipmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
			s.logger.Warn("GetEquipment: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetEquipment: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetEquipment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(equipment), nil
}

// ListEquipment получает весь список оборудования
// Каждый элемент аннотирован флагом hasBookings
func (s *Service) ListEquipment(ctx context.Context) (*models.EquipmentListResponse, error) {
	s.logger.Info("ListEquipment: fetching equipment list")

	items, err := s.catalogRepo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEquipment: successfully fetched %d items", len(items))
	return models.FromDomainEquipmentList(items), nil
}

// UpdateEquipment обновляет оборудование
// Nil-поля запроса сохраняют текущие значения
func (s *Service) UpdateEquipment(ctx context.Context, id int64, req *models.UpdateEquipmentRequest) (*models.EquipmentResponse, error) {
	s.logger.Info("UpdateEquipment: updating equipment id=%d", id)

	equipment, err := s.catalogRepo.GetEquipmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
			s.logger.Warn("UpdateEquipment: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("UpdateEquipment: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEquipment - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateResourceName(name); err != nil {
			s.logger.Warn("UpdateEquipment: invalid name=%q: %v", *req.Name, err)
			return nil, err
		}
		equipment.Name = name
	}
	if req.Description != nil {
		equipment.Description = *req.Description
	}
	if req.Quantity != nil {
		if *req.Quantity < domain.MinEquipmentQuantity {
			s.logger.Warn("UpdateEquipment: invalid quantity=%d", *req.Quantity)
			return nil, fmt.Errorf("%w: quantity must be non-negative", ErrInvalidInput)
		}
		equipment.Quantity = *req.Quantity
	}

	if err := s.catalogRepo.UpdateEquipment(ctx, equipment); err != nil {
		if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		if errors.Is(err, catalogRepo.ErrNameTaken) {
			s.logger.Warn("UpdateEquipment: name=%s already taken", equipment.Name)
			return nil, ErrNameTaken
		}
		s.logger.Error("UpdateEquipment: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateEquipment: successfully updated equipment id=%d", id)
	return models.FromDomainEquipment(equipment), nil
}

// DeleteEquipment удаляет оборудование
// Удаление запрещено, пока на него ссылается хоть одно бронирование
func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	s.logger.Info("DeleteEquipment: deleting equipment id=%d", id)

	inUse, err := s.bookingRepo.HasByEquipment(ctx, id)
	if err != nil {
		s.logger.Error("DeleteEquipment: usage check error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteEquipment - usage check error: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("DeleteEquipment: equipment id=%d has bookings", id)
		return ErrEquipmentInUse
	}

	if err := s.catalogRepo.DeleteEquipment(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
			s.logger.Warn("DeleteEquipment: equipment id=%d not found", id)
			return ErrEquipmentNotFound
		}
		s.logger.Error("DeleteEquipment: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteEquipment: successfully deleted equipment id=%d", id)
	return nil
}

// validateResourceName проверяет имя ресурса каталога
func validateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxResourceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	return nil
}
