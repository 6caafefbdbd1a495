package booking_checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	bookingCheckout "github.com/m04kA/SMC-ParkingService/internal/usecase/booking_checkout"
)

const (
	msgInvalidLocationID = "некорректный ID парковки"
	msgInvalidBookingID  = "некорректный ID брони"
	msgMissingEmployeeID = "отсутствует ID сотрудника"
	msgBookingNotFound   = "бронь не найдена"
	msgNotCheckedIn      = "бронь не в статусе checked_in"
	msgInconsistentState = "данные брони повреждены, обратитесь к администратору"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase BookingCheckOutUseCase
	logger  Logger
}

func NewHandler(useCase BookingCheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/bookings/{bookingId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookingCheckout.Request{
		BookingID:  bookingID,
		LocationID: locationID,
		EmployeeID: employeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingCheckout.ErrBookingNotFound):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Booking not found: booking_id=%d, location_id=%d",
				bookingID, locationID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingCheckout.ErrBookingNotCheckedIn):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Booking not checked in: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgNotCheckedIn)

		case errors.Is(err, bookingCheckout.ErrInconsistentState):
			h.logger.Error("POST /locations/{id}/bookings/{id}/checkout - Inconsistent state: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusInternalServerError, msgInconsistentState)

		case errors.Is(err, bookingCheckout.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/bookings/{id}/checkout - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/bookings/{id}/checkout - Failed to check out: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/bookings/{id}/checkout - Booking completed: booking_id=%d, cost=%.2f",
		result.BookingID, result.FinalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
