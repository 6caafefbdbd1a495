package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/check_availability"
)

const (
	msgInvalidLocationID = "некорректный ID парковки"
	msgInvalidTime       = "некорректные параметры start/end, ожидается RFC3339"
	msgLocationNotFound  = "парковка не найдена"
	msgInvalidWindow     = "некорректное временное окно"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/availability?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/availability - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	startTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/availability - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/availability - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		LocationID: locationID,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/availability - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidWindow), errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/availability - Invalid window: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /locations/{id}/availability - Failed to check availability: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/availability - Availability checked: location_id=%d, bookable=%t",
		locationID, result.IsBookable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
