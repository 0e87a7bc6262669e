package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
)

// UseCase use case для получения свободных ресурсов на слот
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute выполняет use case получения свободных ресурсов
// Чистое чтение: состояние бронирований не меняется, повторный вызов
// с теми же аргументами возвращает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, time=%s, admin=%t", req.Date, req.StartTime, req.IsAdmin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату до календарного дня в опорном часовом поясе
	date, err := domain.ParseDate(req.Date, uc.engine.Location())
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	// 3. Считаем свободные ресурсы слота
	result, err := uc.engine.ComputeAvailability(ctx, date, req.StartTime, req.IsAdmin)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: date=%s time=%s, %d infrastructure, %d equipment free",
		req.Date, req.StartTime, len(result.FreeInfrastructure), len(result.FreeEquipment))

	return toResponse(date, result), nil
}

// toResponse конвертирует domain модель в response
func toResponse(date time.Time, result *domain.Availability) *Response {
	resp := &Response{
		Date:               date,
		StartTime:          result.StartTime,
		FreeInfrastructure: make([]InfrastructureItem, 0, len(result.FreeInfrastructure)),
		FreeEquipment:      make([]EquipmentItem, 0, len(result.FreeEquipment)),
	}

	for _, infra := range result.FreeInfrastructure {
		resp.FreeInfrastructure = append(resp.FreeInfrastructure, InfrastructureItem{
			ID:          infra.ID,
			Name:        infra.Name,
			Description: infra.Description,
		})
	}

	for _, equipment := range result.FreeEquipment {
		resp.FreeEquipment = append(resp.FreeEquipment, EquipmentItem{
			ID:             equipment.Equipment.ID,
			Name:           equipment.Equipment.Name,
			Description:    equipment.Equipment.Description,
			Quantity:       equipment.Equipment.Quantity,
			AvailableUnits: equipment.AvailableUnits,
		})
	}

	return resp
}
