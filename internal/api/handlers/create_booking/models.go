package create_booking

import (
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	createBooking "github.com/reservasalas/BookingService/internal/usecase/create_booking"
	"github.com/reservasalas/BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	InfrastructureID *int64  `json:"infrastructureId,omitempty"`
	EquipmentIDs     []int64 `json:"equipmentIds,omitempty"`
	RequesterName    string  `json:"requesterName"`
	BookingDate      string  `json:"bookingDate"` // "2025-10-15", допускается суффикс времени
	StartTime        string  `json:"startTime"`   // "10:00"
	Description      string  `json:"description"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	InfrastructureID *int64  `json:"infrastructureId,omitempty"`
	EquipmentIDs     []int64 `json:"equipmentIds"`
	RequesterName    string  `json:"requesterName"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	Description      string  `json:"description"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(isAdmin bool) (*createBooking.Request, error) {
	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		InfrastructureID: r.InfrastructureID,
		EquipmentIDs:     r.EquipmentIDs,
		RequesterName:    r.RequesterName,
		Date:             r.BookingDate,
		StartTime:        startTime,
		Description:      r.Description,
		IsAdmin:          isAdmin,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	equipmentIDs := resp.EquipmentIDs
	if equipmentIDs == nil {
		equipmentIDs = []int64{}
	}

	return &BookingResponse{
		ID:               resp.ID,
		InfrastructureID: resp.InfrastructureID,
		EquipmentIDs:     equipmentIDs,
		RequesterName:    resp.RequesterName,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		Description:      resp.Description,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
