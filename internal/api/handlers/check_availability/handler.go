package check_availability

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kartika-hms/booking-gateway/internal/api/handlers"
	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
	checkAvailability "github.com/kartika-hms/booking-gateway/internal/usecase/check_availability"
)

const (
	msgMissingDates     = "check_in and check_out dates are required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRoomType  = "unknown room type"
	msgCheckInInPast    = "check-in date must not be in the past"
	msgInvalidDateRange = "check-out date must be after check-in date"
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

// Handle GET /api/v1/availability
// Query params: check_in (required, YYYY-MM-DD), check_out (required, YYYY-MM-DD), type (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkInStr := r.URL.Query().Get("check_in")
	checkOutStr := r.URL.Query().Get("check_out")

	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /availability - Missing dates: check_in=%q, check_out=%q", checkInStr, checkOutStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	// Фильтр по типу номера опционален
	var roomType *domain.RoomType
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		t := domain.RoomType(typeStr)
		if !t.IsValid() {
			h.logger.Warn("GET /availability - Unknown room type: %q", typeStr)
			handlers.RespondBadRequest(w, msgInvalidRoomType)
			return
		}
		roomType = &t
	}

	useCaseReq, err := ToUseCaseRequest(checkInStr, checkOutStr, roomType)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var statusErr *inventoryservice.StatusError

		switch {
		case errors.Is(err, domain.ErrMissingDate):
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, domain.ErrCheckInInPast):
			h.logger.Warn("GET /availability - Check-in in past: check_in=%s", checkInStr)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: check_in=%s, check_out=%s", checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.As(err, &statusErr):
			// Сбой внешнего сервиса показываем пользователю вместе со статусом,
			// повтор запроса - на его стороне
			h.logger.Error("GET /availability - Availability service failed with status %d", statusErr.StatusCode)
			handlers.RespondBadGateway(w, fmt.Sprintf("availability service responded with status %d", statusErr.StatusCode))

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - OK: check_in=%s, check_out=%s, room_types=%d",
		checkInStr, checkOutStr, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
