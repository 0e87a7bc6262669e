package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reservasalas/BookingService/internal/api/handlers"
	"github.com/reservasalas/BookingService/internal/availability"
	updateBooking "github.com/reservasalas/BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidBookingID       = "некорректный ID бронирования"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgBookingNotFound        = "бронирование не найдено"
	msgInfrastructureConflict = "инфраструктура уже занята в этом слоте"
	msgEquipmentUnavailable   = "недостаточно свободных единиц оборудования"
	msgInfrastructureNotFound = "инфраструктура не найдена"
	msgEquipmentNotFound      = "оборудование не найдено"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking id: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, id, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/%d - Booking updated successfully", id)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// respondError транслирует ошибки use case в HTTP ответы
func (h *Handler) respondError(w http.ResponseWriter, id int64, err error) {
	switch {
	case errors.Is(err, updateBooking.ErrBookingNotFound):
		h.logger.Warn("PUT /bookings/%d - Booking not found", id)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, availability.ErrInfrastructureConflict):
		h.logger.Warn("PUT /bookings/%d - Infrastructure conflict", id)
		handlers.RespondConflict(w, msgInfrastructureConflict)

	case errors.Is(err, availability.ErrEquipmentUnavailable):
		h.logger.Warn("PUT /bookings/%d - Equipment unavailable: %v", id, err)
		handlers.RespondConflict(w, msgEquipmentUnavailable)

	case errors.Is(err, availability.ErrInfrastructureNotFound):
		h.logger.Warn("PUT /bookings/%d - Infrastructure not found", id)
		handlers.RespondNotFound(w, msgInfrastructureNotFound)

	case errors.Is(err, availability.ErrEquipmentNotFound):
		h.logger.Warn("PUT /bookings/%d - Equipment not found: %v", id, err)
		handlers.RespondNotFound(w, msgEquipmentNotFound)

	case errors.Is(err, updateBooking.ErrInvalidInput):
		h.logger.Warn("PUT /bookings/%d - Invalid input: %v", id, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", id, err)
		handlers.RespondInternalError(w)
	}
}
