package quote_booking

import (
	"context"
	"fmt"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// UseCase use case для расчёта стоимости бронирования
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

// Execute выполняет use case расчёта стоимости.
// Никакого состояния между вызовами: смена дат или количества номеров на
// стороне клиента означает полный пересчёт, а не патч предыдущей квоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: check_in=%s, check_out=%s, type=%s, rooms=%d, guests=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.RoomType, req.Rooms, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат относительно текущей даты
	dateRange, err := domain.NewDateRange(req.CheckIn, req.CheckOut, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("QuoteBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем доступность по запрошенному типу номера
	rooms, err := uc.inventoryClient.GetAvailability(ctx, dateRange, &req.RoomType)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to fetch availability: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch availability: %w", ErrInternal, err)
	}

	availability, found := findRoomType(rooms, req.RoomType)
	if !found {
		uc.logger.Warn("QuoteBooking: room type %s not present in availability response", req.RoomType)
		return nil, domain.ErrZeroAvailability
	}

	// 4. Считаем квоту: вместимость -> доступность -> цена
	quote, err := domain.ComputeQuote(availability, dateRange.Nights(), req.Rooms, req.Guests)
	if err != nil {
		uc.logger.Warn("QuoteBooking: quote rejected: %v", err)
		return nil, err
	}

	uc.logger.Info("QuoteBooking: quoted %d for %d nights x %d rooms of %s",
		quote.TotalPrice, quote.Nights, quote.RoomsRequested, req.RoomType)

	return &Response{
		CheckIn:              dateRange.CheckIn,
		CheckOut:             dateRange.CheckOut,
		RoomType:             req.RoomType,
		Rooms:                req.Rooms,
		Guests:               req.Guests,
		Nights:               quote.Nights,
		PricePerNightPerRoom: quote.PricePerNightPerRoom,
		BasePricePerNight:    availability.BasePrice,
		SavingsPerNight:      availability.SavingsPerNight(),
		DiscountPercent:      availability.DiscountPercent,
		TotalPrice:           quote.TotalPrice,
		AvailableRooms:       availability.AvailableRooms,
		CapacityOk:           quote.CapacityOk,
		AvailabilityOk:       quote.AvailabilityOk,
	}, nil
}
