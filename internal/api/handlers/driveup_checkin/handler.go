package driveup_checkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	driveupCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/driveup_checkin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID парковки"
	msgMissingEmployeeID  = "отсутствует ID сотрудника"
	msgLocationNotFound   = "парковка не найдена"
	msgNoFreeSlots        = "свободных мест нет"
	msgAlreadyParked      = "автомобиль с этим номером уже на парковке"
	msgInvalidPlate       = "некорректный госномер"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase DriveUpCheckInUseCase
	logger  Logger
}

func NewHandler(useCase DriveUpCheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/checkin - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/checkin - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &driveupCheckin.Request{
		LocationID:   locationID,
		LicensePlate: req.LicensePlate,
		EmployeeID:   employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, driveupCheckin.ErrLocationNotFound):
			h.logger.Warn("POST /locations/{id}/checkin - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, driveupCheckin.ErrNoFreeSlots):
			h.logger.Warn("POST /locations/{id}/checkin - No free slots: location_id=%d", locationID)
			handlers.RespondConflict(w, msgNoFreeSlots)

		case errors.Is(err, driveupCheckin.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /locations/{id}/checkin - Vehicle already parked: location_id=%d", locationID)
			handlers.RespondConflict(w, msgAlreadyParked)

		case errors.Is(err, driveupCheckin.ErrInvalidPlate):
			h.logger.Warn("POST /locations/{id}/checkin - Invalid plate: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidPlate)

		case errors.Is(err, driveupCheckin.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/checkin - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/checkin - Failed to check in: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/checkin - Vehicle checked in: session_id=%d, location_id=%d, employee_id=%d",
		result.SessionID, locationID, employeeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
