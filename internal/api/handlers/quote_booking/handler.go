package quote_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kartika-hms/booking-gateway/internal/api/handlers"
	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
	quoteBooking "github.com/kartika-hms/booking-gateway/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingDates       = "check-in and check-out dates are required"
	msgCheckInInPast      = "check-in date must not be in the past"
	msgInvalidDateRange   = "check-out date must be after check-in date"
	msgCapacityExceeded   = "guest count exceeds room capacity of 4 guests per room"
	msgZeroAvailability   = "no rooms of this type are available for the selected dates"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var insufficientErr *domain.InsufficientInventoryError
		var statusErr *inventoryservice.StatusError

		switch {
		case errors.Is(err, domain.ErrMissingDate):
			h.logger.Warn("POST /quotes - Missing dates")
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, domain.ErrCheckInInPast):
			h.logger.Warn("POST /quotes - Check-in in past: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("POST /quotes - Invalid range: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, domain.ErrCapacityExceeded):
			h.logger.Warn("POST /quotes - Capacity exceeded: rooms=%d, guests=%d", req.Rooms, req.Guests)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, domain.ErrZeroAvailability):
			h.logger.Warn("POST /quotes - Zero availability: type=%s", req.RoomType)
			handlers.RespondConflict(w, msgZeroAvailability)

		case errors.As(err, &insufficientErr):
			// Количество свободных номеров попадает в сообщение, чтобы клиент
			// мог предложить уменьшить запрос
			h.logger.Warn("POST /quotes - Insufficient inventory: requested=%d, available=%d",
				insufficientErr.Requested, insufficientErr.Available)
			handlers.RespondConflict(w, fmt.Sprintf("only %d rooms of this type are available", insufficientErr.Available))

		case errors.As(err, &statusErr):
			h.logger.Error("POST /quotes - Availability service failed with status %d", statusErr.StatusCode)
			handlers.RespondBadGateway(w, fmt.Sprintf("availability service responded with status %d", statusErr.StatusCode))

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /quotes - Failed: type=%s, rooms=%d, guests=%d, error=%v",
				req.RoomType, req.Rooms, req.Guests, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quotes - Quote computed: type=%s, rooms=%d, nights=%d, total=%d",
		req.RoomType, req.Rooms, result.Nights, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
