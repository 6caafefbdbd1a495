package get_open_sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions"
)

const (
	msgInvalidLocationID = "некорректный ID парковки"
	msgMissingEmployeeID = "отсутствует ID сотрудника"
	msgLocationNotFound  = "парковка не найдена"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/sessions - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	if _, ok := middleware.GetEmployeeID(r.Context()); !ok {
		h.logger.Warn("GET /locations/{id}/sessions - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	result, err := h.service.ListOpenByLocation(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, sessions.ErrLocationNotFound) {
			h.logger.Warn("GET /locations/{id}/sessions - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)
			return
		}
		h.logger.Error("GET /locations/{id}/sessions - Failed to list sessions: location_id=%d, error=%v",
			locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/sessions - Sessions retrieved: location_id=%d, count=%d",
		locationID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
