package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
)

// UseCase use case для создания гостевого бронирования.
// Проверяет запрос заново целиком: квота, посчитанная клиентом раньше,
// не переиспользуется
type UseCase struct {
	inventoryClient InventoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inventoryClient InventoryClient, logger Logger) *UseCase {
	return &UseCase{
		inventoryClient: inventoryClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: check_in=%s, check_out=%s, type=%s, rooms=%d, guests=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.RoomType, req.Rooms, req.Guests)

	// 1. Валидация входных данных (включая данные гостя)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат относительно текущей даты
	dateRange, err := domain.NewDateRange(req.CheckIn, req.CheckOut, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Свежий снапшот доступности по запрошенному типу
	rooms, err := uc.inventoryClient.GetAvailability(ctx, dateRange, &req.RoomType)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch availability: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch availability: %w", ErrInternal, err)
	}

	availability, found := findRoomType(rooms, req.RoomType)
	if !found {
		uc.logger.Warn("CreateBooking: room type %s not present in availability response", req.RoomType)
		return nil, domain.ErrZeroAvailability
	}

	// 4. Квота: вместимость -> доступность -> цена
	quote, err := domain.ComputeQuote(availability, dateRange.Nights(), req.Rooms, req.Guests)
	if err != nil {
		uc.logger.Warn("CreateBooking: quote rejected: %v", err)
		return nil, err
	}

	// 5. Собираем payload только после успешных проверок
	phone := domain.NormalizePhone(req.Phone)
	payload := &inventoryservice.GuestBookingPayload{
		RoomType:  string(req.RoomType),
		Rooms:     req.Rooms,
		Guests:    req.Guests,
		CheckIn:   dateRange.CheckIn.Format(domain.DateFormat),
		CheckOut:  dateRange.CheckOut.Format(domain.DateFormat),
		GuestName: strings.TrimSpace(req.GuestName),
		Phone:     phone,
		Email:     optionalText(req.Email),
		Notes:     optionalText(req.Notes),
	}

	// 6. Отправляем бронирование во внешний сервис
	whatsAppURL, err := uc.inventoryClient.CreateGuestBooking(ctx, payload)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create guest booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create guest booking: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking created for %s, total=%d, redirect ready",
		req.RoomType, quote.TotalPrice)

	return &Response{
		CheckIn:              dateRange.CheckIn,
		CheckOut:             dateRange.CheckOut,
		RoomType:             req.RoomType,
		Rooms:                req.Rooms,
		Guests:               req.Guests,
		Nights:               quote.Nights,
		PricePerNightPerRoom: quote.PricePerNightPerRoom,
		TotalPrice:           quote.TotalPrice,
		GuestName:            payload.GuestName,
		Phone:                phone,
		WhatsAppURL:          whatsAppURL,
	}, nil
}
