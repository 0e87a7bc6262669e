package update_booking

import (
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	updateBooking "github.com/reservasalas/BookingService/internal/usecase/update_booking"
	"github.com/reservasalas/BookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateBookingRequest struct {
	InfrastructureID *int64  `json:"infrastructureId,omitempty"`
	EquipmentIDs     []int64 `json:"equipmentIds,omitempty"`
	RequesterName    *string `json:"requesterName,omitempty"`
	BookingDate      *string `json:"bookingDate,omitempty"`
	StartTime        *string `json:"startTime,omitempty"`
	Description      *string `json:"description,omitempty"`
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
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:               id,
		InfrastructureID: r.InfrastructureID,
		EquipmentIDs:     r.EquipmentIDs,
		RequesterName:    r.RequesterName,
		Date:             r.BookingDate,
		Description:      r.Description,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
