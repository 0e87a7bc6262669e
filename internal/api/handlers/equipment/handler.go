package equipment

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
	msgInvalidID          = "некорректный ID оборудования"
	msgNotFound           = "оборудование не найдено"
	msgNameTaken          = "оборудование с таким названием уже существует"
	msgInUse              = "оборудование используется в бронированиях"
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

// Create POST /api/v1/equipment
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNameTaken):
			h.logger.Warn("POST /equipment - Name taken: %s", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /equipment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /equipment - Failed to create: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipment - Created equipment id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/equipment
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipment - Listed %d items", len(result.Equipment))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/equipment/{equipmentId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetEquipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /equipment/{id} - Failed to get: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/equipment/{equipmentId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateEquipment(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("PUT /equipment/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrNameTaken):
			h.logger.Warn("PUT /equipment/{id} - Name taken: id=%d", id)
			handlers.RespondConflict(w, msgNameTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /equipment/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /equipment/{id} - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /equipment/{id} - Updated equipment id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/equipment/{equipmentId}
// Удаление блокируется, пока оборудование занято бронированиями
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("DELETE /equipment/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrEquipmentInUse):
			h.logger.Warn("DELETE /equipment/{id} - In use: id=%d", id)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /equipment/{id} - Failed to delete: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /equipment/{id} - Deleted equipment id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseID извлекает ID оборудования из URL
func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("Invalid equipment ID: %s", mux.Vars(r)["equipmentId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
