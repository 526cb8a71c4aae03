package create_booking

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// Request модель запроса на создание гостевого бронирования
type Request struct {
	CheckIn  time.Time       // Дата заезда (без времени)
	CheckOut time.Time       // Дата выезда (без времени)
	RoomType domain.RoomType // Тип номера
	Rooms    int             // Количество запрашиваемых номеров
	Guests   int             // Количество гостей

	GuestName string  // Имя гостя (обязательно)
	Phone     string  // Телефон в произвольном формате, нормализуется
	Email     *string // Email (опционально)
	Notes     *string // Пожелания гостя (опционально)
}

// Response модель ответа с подтверждённой квотой и ссылкой для продолжения
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	RoomType domain.RoomType
	Rooms    int
	Guests   int

	Nights               int
	PricePerNightPerRoom int64
	TotalPrice           int64

	GuestName string
	Phone     string // Нормализованный номер, отправленный во внешний сервис

	// WhatsAppURL deep-link для продолжения оформления бронирования.
	// Отсутствие ссылки в ответе внешнего сервиса - ошибка, не fallback
	WhatsAppURL string
}
