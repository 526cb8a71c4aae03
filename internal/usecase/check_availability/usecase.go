package check_availability

import (
	"context"
	"fmt"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// UseCase use case для проверки доступности номеров на диапазон дат
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

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: check_in=%s, check_out=%s, type=%v",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), roomTypeForLog(req.RoomType))

	// 1. Валидация фильтра по типу номера
	if req.RoomType != nil && !req.RoomType.IsValid() {
		uc.logger.Warn("CheckAvailability: unknown room type %q", *req.RoomType)
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.RoomType)
	}

	// 2. Валидация диапазона дат относительно текущей даты
	dateRange, err := domain.NewDateRange(req.CheckIn, req.CheckOut, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем снапшот доступности у InventoryService.
	// Каждый вызов независимый, результат не кешируется
	rooms, err := uc.inventoryClient.GetAvailability(ctx, dateRange, req.RoomType)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch availability: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch availability: %w", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: %d room types available for %d nights",
		len(rooms), dateRange.Nights())

	return &Response{
		CheckIn:  dateRange.CheckIn,
		CheckOut: dateRange.CheckOut,
		Nights:   dateRange.Nights(),
		Rooms:    rooms,
	}, nil
}

// roomTypeForLog форматирует опциональный фильтр для логов
func roomTypeForLog(t *domain.RoomType) string {
	if t == nil {
		return "all"
	}
	return string(*t)
}
