package booking_checkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	bookingCheckin "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID парковки"
	msgInvalidBookingID   = "некорректный ID брони"
	msgMissingEmployeeID  = "отсутствует ID сотрудника"
	msgBookingNotFound    = "бронь не найдена"
	msgNotConfirmed       = "бронь не в статусе confirmed"
	msgNoFreeSlots        = "свободных мест нет"
	msgAlreadyParked      = "автомобиль с этим номером уже на парковке"
	msgInvalidPlate       = "некорректный госномер"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase BookingCheckInUseCase
	logger  Logger
}

func NewHandler(useCase BookingCheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/bookings/{bookingId}/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookingCheckin.Request{
		BookingID:    bookingID,
		LocationID:   locationID,
		LicensePlate: req.LicensePlate,
		EmployeeID:   employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingCheckin.ErrBookingNotFound):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Booking not found: booking_id=%d, location_id=%d",
				bookingID, locationID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingCheckin.ErrBookingNotConfirmed):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Booking not confirmed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgNotConfirmed)

		case errors.Is(err, bookingCheckin.ErrNoFreeSlots):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - No free slots: location_id=%d", locationID)
			handlers.RespondConflict(w, msgNoFreeSlots)

		case errors.Is(err, bookingCheckin.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Vehicle already parked: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyParked)

		case errors.Is(err, bookingCheckin.ErrInvalidPlate):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Invalid plate: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidPlate)

		case errors.Is(err, bookingCheckin.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkin - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/bookings/{id}/checkin - Failed to check in: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/bookings/{id}/checkin - Booking checked in: booking_id=%d, session_id=%d",
		result.BookingID, result.SessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
