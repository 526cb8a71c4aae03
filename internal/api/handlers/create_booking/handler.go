package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kartika-hms/booking-gateway/internal/api/handlers"
	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
	createBooking "github.com/kartika-hms/booking-gateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgMissingDates         = "check-in and check-out dates are required"
	msgCheckInInPast        = "check-in date must not be in the past"
	msgInvalidDateRange     = "check-out date must be after check-in date"
	msgCapacityExceeded     = "guest count exceeds room capacity of 4 guests per room"
	msgZeroAvailability     = "no rooms of this type are available for the selected dates"
	msgMissingRedirect      = "booking was not confirmed: no redirect link received"
	msgBookingServiceFailed = "booking service responded with status %d"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var insufficientErr *domain.InsufficientInventoryError
		var statusErr *inventoryservice.StatusError

		switch {
		case errors.Is(err, domain.ErrMissingDate):
			h.logger.Warn("POST /bookings - Missing dates")
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, domain.ErrCheckInInPast):
			h.logger.Warn("POST /bookings - Check-in in past: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, domain.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: rooms=%d, guests=%d", req.Rooms, req.Guests)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, domain.ErrZeroAvailability):
			h.logger.Warn("POST /bookings - Zero availability: type=%s", req.RoomType)
			handlers.RespondConflict(w, msgZeroAvailability)

		case errors.As(err, &insufficientErr):
			h.logger.Warn("POST /bookings - Insufficient inventory: requested=%d, available=%d",
				insufficientErr.Requested, insufficientErr.Available)
			handlers.RespondConflict(w, fmt.Sprintf("only %d rooms of this type are available", insufficientErr.Available))

		case errors.Is(err, inventoryservice.ErrMissingRedirectTarget):
			// Фатально для этой попытки бронирования, тихий fallback запрещён
			h.logger.Error("POST /bookings - Booking response has no redirect target: type=%s", req.RoomType)
			handlers.RespondBadGateway(w, msgMissingRedirect)

		case errors.As(err, &statusErr):
			h.logger.Error("POST /bookings - Upstream service failed with status %d", statusErr.StatusCode)
			handlers.RespondBadGateway(w, fmt.Sprintf(msgBookingServiceFailed, statusErr.StatusCode))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: type=%s, rooms=%d, guests=%d, error=%v",
				req.RoomType, req.Rooms, req.Guests, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: type=%s, rooms=%d, total=%d",
		req.RoomType, req.Rooms, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
