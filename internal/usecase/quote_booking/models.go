package quote_booking

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// Request модель запроса на расчёт стоимости бронирования
type Request struct {
	CheckIn  time.Time       // Дата заезда (без времени)
	CheckOut time.Time       // Дата выезда (без времени)
	RoomType domain.RoomType // Тип номера
	Rooms    int             // Количество запрашиваемых номеров
	Guests   int             // Количество гостей
}

// Response модель ответа с рассчитанной стоимостью.
// Квота эфемерна: считается заново при каждом запросе и нигде не сохраняется
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	RoomType domain.RoomType
	Rooms    int
	Guests   int

	Nights               int
	PricePerNightPerRoom int64 // Цена после скидки, использованная в расчёте
	BasePricePerNight    int64 // Цена до скидки, информационная
	SavingsPerNight      int64 // basePrice - currentPrice, для отображения выгоды
	DiscountPercent      int
	TotalPrice           int64 // nights * rooms * pricePerNightPerRoom
	AvailableRooms       int
	CapacityOk           bool
	AvailabilityOk       bool
}
