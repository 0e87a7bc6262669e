package update_booking

import (
	"fmt"

	"github.com/reservasalas/BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.RequesterName != nil {
		if *req.RequesterName == "" {
			return fmt.Errorf("%w: requesterName must not be empty", ErrInvalidInput)
		}
		if len(*req.RequesterName) > domain.MaxRequesterNameLength {
			return fmt.Errorf("%w: requesterName is too long", ErrInvalidInput)
		}
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.Date != nil && *req.Date == "" {
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
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

// equipmentChanged сравнивает списки оборудования как мультимножества
func equipmentChanged(current, next []int64) bool {
	if len(current) != len(next) {
		return true
	}

	counts := make(map[int64]int, len(current))
	for _, id := range current {
		counts[id]++
	}
	for _, id := range next {
		counts[id]--
		if counts[id] < 0 {
			return true
		}
	}

	return false
}

// infrastructureChanged сравнивает ссылки на инфраструктуру
func infrastructureChanged(current, next *int64) bool {
	if current == nil && next == nil {
		return false
	}
	if current == nil || next == nil {
		return true
	}
	return *current != *next
}
