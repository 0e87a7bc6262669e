package models

import (
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64   `json:"id"`
	InfrastructureID *int64  `json:"infrastructureId,omitempty"`
	EquipmentIDs     []int64 `json:"equipmentIds"`
	RequesterName    string  `json:"requesterName"`
	BookingDate      string  `json:"bookingDate"` // "2025-10-15"
	StartTime        string  `json:"startTime"`   // "10:00"
	Description      string  `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	equipmentIDs := b.EquipmentIDs
	if equipmentIDs == nil {
		equipmentIDs = []int64{}
	}

	return &BookingResponse{
		ID:               b.ID,
		InfrastructureID: b.InfrastructureID,
		EquipmentIDs:     equipmentIDs,
		RequesterName:    b.RequesterName,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		Description:      b.Description,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
