package list_bookings

import (
	"errors"
	"net/http"

	"github.com/reservasalas/BookingService/internal/api/handlers"
	"github.com/reservasalas/BookingService/internal/service/bookings"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
// Без параметра date возвращает все бронирования от новых к старым,
// с параметром - бронирования дня по возрастанию времени начала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *string
	if raw := r.URL.Query().Get("date"); raw != "" {
		date = &raw
	}

	result, err := h.service.List(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
