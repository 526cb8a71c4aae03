package quote_booking

import (
	"fmt"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.RoomType.IsValid() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	if req.Rooms <= 0 {
		return fmt.Errorf("%w: rooms must be positive", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	return nil
}

// findRoomType ищет снапшот запрошенного типа в ответе сервиса.
// Отсутствие типа в ответе равнозначно нулевой доступности
func findRoomType(rooms []domain.RoomTypeAvailability, roomType domain.RoomType) (domain.RoomTypeAvailability, bool) {
	for _, room := range rooms {
		if room.RoomType == roomType {
			return room, true
		}
	}
	return domain.RoomTypeAvailability{}, false
}
