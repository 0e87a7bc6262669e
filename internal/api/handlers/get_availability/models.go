package get_availability

import (
	"github.com/reservasalas/BookingService/internal/domain"
	getAvailability "github.com/reservasalas/BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date               string                   `json:"date"`
	StartTime          string                   `json:"startTime"`
	FreeInfrastructure []InfrastructureResponse `json:"freeInfrastructure"`
	FreeEquipment      []EquipmentResponse      `json:"freeEquipment"`
}

// InfrastructureResponse свободная инфраструктура в слоте
type InfrastructureResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EquipmentResponse оборудование с остатком в слоте
type EquipmentResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	AvailableUnits int    `json:"availableUnits"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		FreeInfrastructure: make([]InfrastructureResponse, 0, len(resp.FreeInfrastructure)),
		FreeEquipment:      make([]EquipmentResponse, 0, len(resp.FreeEquipment)),
	}

	for _, infra := range resp.FreeInfrastructure {
		out.FreeInfrastructure = append(out.FreeInfrastructure, InfrastructureResponse{
			ID:          infra.ID,
			Name:        infra.Name,
			Description: infra.Description,
		})
	}

	for _, equipment := range resp.FreeEquipment {
		out.FreeEquipment = append(out.FreeEquipment, EquipmentResponse{
			ID:             equipment.ID,
			Name:           equipment.Name,
			Description:    equipment.Description,
			Quantity:       equipment.Quantity,
			AvailableUnits: equipment.AvailableUnits,
		})
	}

	return out
}
