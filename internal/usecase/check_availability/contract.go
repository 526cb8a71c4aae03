package check_availability

import (
	"context"
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// InventoryClient интерфейс клиента InventoryService
type InventoryClient interface {
	GetAvailability(ctx context.Context, dateRange domain.DateRange, roomType *domain.RoomType) ([]domain.RoomTypeAvailability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
