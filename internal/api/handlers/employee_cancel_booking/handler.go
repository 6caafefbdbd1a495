package employee_cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	employeeCancel "github.com/m04kA/SMC-ParkingService/internal/usecase/employee_cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID парковки"
	msgInvalidBookingID   = "некорректный ID брони"
	msgMissingEmployeeID  = "отсутствует ID сотрудника"
	msgBookingNotFound    = "бронь не найдена"
	msgAlreadyTerminal    = "бронь уже завершена или отменена"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase EmployeeCancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase EmployeeCancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/locations/{locationId}/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &employeeCancel.Request{
		BookingID:  bookingID,
		LocationID: locationID,
		EmployeeID: employeeID,
		Reason:     req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, employeeCancel.ErrBookingNotFound):
			h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Booking not found: booking_id=%d, location_id=%d",
				bookingID, locationID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, employeeCancel.ErrAlreadyTerminal):
			h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Booking already terminal: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgAlreadyTerminal)

		case errors.Is(err, employeeCancel.ErrInvalidInput):
			h.logger.Warn("PATCH /locations/{id}/bookings/{id}/cancel - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /locations/{id}/bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /locations/{id}/bookings/{id}/cancel - Booking cancelled by employee: booking_id=%d, employee_id=%d, session_closed=%t",
		bookingID, employeeID, result.SessionClosed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
