package check_availability

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	checkAvailability "github.com/kartika-hms/booking-gateway/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn  string             `json:"checkIn"`
	CheckOut string             `json:"checkOut"`
	Nights   int                `json:"nights"`
	Rooms    []RoomAvailability `json:"rooms"`
}

// RoomAvailability модель доступности типа номера
type RoomAvailability struct {
	RoomType        string `json:"roomType"`
	BasePrice       int64  `json:"basePrice"`
	CurrentPrice    int64  `json:"currentPrice"`
	DiscountPercent int    `json:"discountPercent"`
	SavingsPerNight int64  `json:"savingsPerNight"`
	AvailableRooms  int    `json:"availableRooms"`
	TotalRooms      int    `json:"totalRooms"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(checkInStr, checkOutStr string, roomType *domain.RoomType) (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: roomType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	rooms := make([]RoomAvailability, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomAvailability{
			RoomType:        string(room.RoomType),
			BasePrice:       room.BasePrice,
			CurrentPrice:    room.CurrentPrice,
			DiscountPercent: room.DiscountPercent,
			SavingsPerNight: room.SavingsPerNight(),
			AvailableRooms:  room.AvailableRooms,
			TotalRooms:      room.TotalRooms,
		}
	}

	return &AvailabilityResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Rooms:    rooms,
	}
}
