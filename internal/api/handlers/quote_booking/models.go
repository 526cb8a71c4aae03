package quote_booking

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	quoteBooking "github.com/kartika-hms/booking-gateway/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CheckIn  string `json:"checkIn"`  // "2025-06-01"
	CheckOut string `json:"checkOut"` // "2025-06-03"
	RoomType string `json:"roomType"`
	Rooms    int    `json:"rooms"`
	Guests   int    `json:"guests"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	RoomType string `json:"roomType"`
	Rooms    int    `json:"rooms"`
	Guests   int    `json:"guests"`

	Nights               int   `json:"nights"`
	PricePerNightPerRoom int64 `json:"pricePerNightPerRoom"`
	BasePricePerNight    int64 `json:"basePricePerNight"`
	SavingsPerNight      int64 `json:"savingsPerNight"`
	DiscountPercent      int   `json:"discountPercent"`
	TotalPrice           int64 `json:"totalPrice"`
	AvailableRooms       int   `json:"availableRooms"`
	CapacityOk           bool  `json:"capacityOk"`
	AvailabilityOk       bool  `json:"availabilityOk"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	var checkIn, checkOut time.Time
	var err error

	// Пустые даты пропускаем нулевыми: use case вернёт ErrMissingDate
	if r.CheckIn != "" {
		checkIn, err = time.Parse(domain.DateFormat, r.CheckIn)
		if err != nil {
			return nil, err
		}
	}

	if r.CheckOut != "" {
		checkOut, err = time.Parse(domain.DateFormat, r.CheckOut)
		if err != nil {
			return nil, err
		}
	}

	return &quoteBooking.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: domain.RoomType(r.RoomType),
		Rooms:    r.Rooms,
		Guests:   r.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		CheckIn:              resp.CheckIn.Format(domain.DateFormat),
		CheckOut:             resp.CheckOut.Format(domain.DateFormat),
		RoomType:             string(resp.RoomType),
		Rooms:                resp.Rooms,
		Guests:               resp.Guests,
		Nights:               resp.Nights,
		PricePerNightPerRoom: resp.PricePerNightPerRoom,
		BasePricePerNight:    resp.BasePricePerNight,
		SavingsPerNight:      resp.SavingsPerNight,
		DiscountPercent:      resp.DiscountPercent,
		TotalPrice:           resp.TotalPrice,
		AvailableRooms:       resp.AvailableRooms,
		CapacityOk:           resp.CapacityOk,
		AvailabilityOk:       resp.AvailabilityOk,
	}
}
