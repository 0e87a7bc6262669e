package create_booking

import (
	"fmt"

	"github.com/reservasalas/BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequesterName == "" {
		return fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}

	if len(req.RequesterName) > domain.MaxRequesterNameLength {
		return fmt.Errorf("%w: requesterName is too long", ErrInvalidInput)
	}

	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.InfrastructureID != nil && *req.InfrastructureID <= 0 {
		return fmt.Errorf("%w: infrastructureId must be positive", ErrInvalidInput)
	}

	for _, equipmentID := range req.EquipmentIDs {
		if equipmentID <= 0 {
			return fmt.Errorf("%w: equipmentIds must be positive", ErrInvalidInput)
		}
	}

	return nil
}
