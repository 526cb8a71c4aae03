package check_availability

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// Request модель запроса на проверку доступности номеров
type Request struct {
	CheckIn  time.Time        // Дата заезда (без времени)
	CheckOut time.Time        // Дата выезда (без времени)
	RoomType *domain.RoomType // Фильтр по типу номера (nil - все типы)
}

// Response модель ответа со снапшотом доступности
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int                           // Количество ночей проживания
	Rooms    []domain.RoomTypeAvailability // В порядке ответа сервиса; может быть пустым
}
