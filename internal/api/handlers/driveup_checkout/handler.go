package driveup_checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	driveupCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkout"
)

const (
	msgInvalidLocationID = "некорректный ID парковки"
	msgInvalidSessionID  = "некорректный ID сессии"
	msgMissingEmployeeID = "отсутствует ID сотрудника"
	msgSessionNotFound   = "сессия не найдена"
	msgAlreadyClosed     = "сессия уже закрыта"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase DriveUpCheckOutUseCase
	logger  Logger
}

func NewHandler(useCase DriveUpCheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/sessions/{sessionId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	sessionID, err := strconv.ParseInt(vars["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &driveupCheckout.Request{
		SessionID:  sessionID,
		LocationID: locationID,
		EmployeeID: employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, driveupCheckout.ErrSessionNotFound):
			h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Session not found: session_id=%d, location_id=%d",
				sessionID, locationID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, driveupCheckout.ErrSessionAlreadyClosed):
			h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Session already closed: session_id=%d", sessionID)
			handlers.RespondConflict(w, msgAlreadyClosed)

		case errors.Is(err, driveupCheckout.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/sessions/{id}/checkout - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/sessions/{id}/checkout - Failed to check out: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/sessions/{id}/checkout - Vehicle checked out: session_id=%d, cost=%.2f",
		result.SessionID, result.Cost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
