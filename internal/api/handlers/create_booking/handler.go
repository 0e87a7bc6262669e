package create_booking

import (
	"errors"
	"net/http"

	"github.com/reservasalas/BookingService/internal/api/handlers"
	"github.com/reservasalas/BookingService/internal/api/middleware"
	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
	createBooking "github.com/reservasalas/BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgLeadTimeTooShort       = "слишком поздно для бронирования этого слота"
	msgInfrastructureConflict = "инфраструктура уже занята в этом слоте"
	msgEquipmentUnavailable   = "недостаточно свободных единиц оборудования"
	msgInfrastructureNotFound = "инфраструктура не найдена"
	msgEquipmentNotFound      = "оборудование не найдено"

	codeLeadTimeTooShort = "LEAD_TIME_TOO_SHORT"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, requester=%s",
		result.ID, req.RequesterName)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// respondError транслирует ошибки use case в HTTP ответы
func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	var leadTimeErr *availability.LeadTimeError

	switch {
	case errors.As(err, &leadTimeErr):
		h.logger.Warn("POST /bookings - Lead time too short: date=%s, time=%s", req.BookingDate, req.StartTime)
		handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgLeadTimeTooShort, codeLeadTimeTooShort,
			map[string]interface{}{
				"date":           leadTimeErr.Date.Format(domain.DateFormat),
				"time":           leadTimeErr.StartTime.String(),
				"minimumMinutes": leadTimeErr.MinimumMinutes,
			})

	case errors.Is(err, availability.ErrInfrastructureConflict):
		h.logger.Warn("POST /bookings - Infrastructure conflict: date=%s, time=%s", req.BookingDate, req.StartTime)
		handlers.RespondConflict(w, msgInfrastructureConflict)

	case errors.Is(err, availability.ErrEquipmentUnavailable):
		h.logger.Warn("POST /bookings - Equipment unavailable: date=%s, time=%s: %v", req.BookingDate, req.StartTime, err)
		handlers.RespondConflict(w, msgEquipmentUnavailable)

	case errors.Is(err, availability.ErrInfrastructureNotFound):
		h.logger.Warn("POST /bookings - Infrastructure not found: %v", req.InfrastructureID)
		handlers.RespondNotFound(w, msgInfrastructureNotFound)

	case errors.Is(err, availability.ErrEquipmentNotFound):
		h.logger.Warn("POST /bookings - Equipment not found: %v", err)
		handlers.RespondNotFound(w, msgEquipmentNotFound)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("POST /bookings - Failed to create booking: requester=%s, error=%v", req.RequesterName, err)
		handlers.RespondInternalError(w)
	}
}
