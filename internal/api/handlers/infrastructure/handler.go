package infrastructure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reservasalas/BookingService/internal/api/handlers"
	"github.com/reservasalas/BookingService/internal/service/catalog"
	"github.com/reservasalas/BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID инфраструктуры"
	msgNotFound           = "инфраструктура не найдена"
	msgNameTaken          = "инфраструктура с таким названием уже существует"
	msgInUse              = "инфраструктура используется в бронированиях"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/infrastructure
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInfrastructureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /infrastructure - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateInfrastructure(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNameTaken):
			h.logger.Warn("POST /infrastructure - Name taken: %s", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /infrastructure - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /infrastructure - Failed to create: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /infrastructure - Created infrastructure id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/infrastructure
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListInfrastructure(r.Context())
	if err != nil {
		h.logger.Error("GET /infrastructure - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /infrastructure - Listed %d items", len(result.Infrastructure))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/infrastructure/{infraId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetInfrastructure(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInfrastructureNotFound):
			h.logger.Warn("GET /infrastructure/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /infrastructure/{id} - Failed to get: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/infrastructure/{infraId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateInfrastructureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /infrastructure/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateInfrastructure(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInfrastructureNotFound):
			h.logger.Warn("PUT /infrastructure/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrNameTaken):
			h.logger.Warn("PUT /infrastructure/{id} - Name taken: id=%d", id)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /infrastructure/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /infrastructure/{id} - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /infrastructure/{id} - Updated infrastructure id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/infrastructure/{infraId}
// Удаление блокируется, пока инфраструктура занята бронированиями
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteInfrastructure(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInfrastructureNotFound):
			h.logger.Warn("DELETE /infrastructure/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInfrastructureInUse):
			h.logger.Warn("DELETE /infrastructure/{id} - In use: id=%d", id)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /infrastructure/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /infrastructure/{id} - Deleted infrastructure id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseID извлекает ID инфраструктуры из URL
func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["infraId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("Invalid infrastructure ID: %s", mux.Vars(r)["infraId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
