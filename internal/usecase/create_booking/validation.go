package create_booking

import (
	"fmt"
	"strings"

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

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name must not exceed %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if domain.NormalizePhone(req.Phone) == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(strings.TrimSpace(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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

// optionalText обрезает пробелы и превращает пустые строки в nil.
// Email и заметки попадают в payload только если непустые после trim
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
