package get_availability

import (
	"errors"
	"net/http"

	"github.com/reservasalas/BookingService/internal/api/handlers"
	"github.com/reservasalas/BookingService/internal/api/middleware"
	getAvailability "github.com/reservasalas/BookingService/internal/usecase/get_availability"
	"github.com/reservasalas/BookingService/pkg/types"
)

const (
	msgMissingDate = "отсутствует параметр date"
	msgMissingTime = "отсутствует параметр time"
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	rawTime := query.Get("time")
	if rawTime == "" {
		h.logger.Warn("GET /availability - Missing time parameter")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	startTime, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid time=%s: %v", rawTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		StartTime: startTime,
		IsAdmin:   middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s time=%s, %d infrastructure, %d equipment free",
		date, rawTime, len(result.FreeInfrastructure), len(result.FreeEquipment))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
