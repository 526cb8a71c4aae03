package create_booking

import (
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	createBooking "github.com/kartika-hms/booking-gateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CheckIn  string `json:"checkIn"`  // "2025-06-01"
	CheckOut string `json:"checkOut"` // "2025-06-03"
	RoomType string `json:"roomType"`
	Rooms    int    `json:"rooms"`
	Guests   int    `json:"guests"`

	GuestName string  `json:"guestName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	RoomType string `json:"roomType"`
	Rooms    int    `json:"rooms"`
	Guests   int    `json:"guests"`

	Nights               int   `json:"nights"`
	PricePerNightPerRoom int64 `json:"pricePerNightPerRoom"`
	TotalPrice           int64 `json:"totalPrice"`

	GuestName   string `json:"guestName"`
	Phone       string `json:"phone"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
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

	return &createBooking.Request{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomType:  domain.RoomType(r.RoomType),
		Rooms:     r.Rooms,
		Guests:    r.Guests,
		GuestName: r.GuestName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		CheckIn:              resp.CheckIn.Format(domain.DateFormat),
		CheckOut:             resp.CheckOut.Format(domain.DateFormat),
		RoomType:             string(resp.RoomType),
		Rooms:                resp.Rooms,
		Guests:               resp.Guests,
		Nights:               resp.Nights,
		PricePerNightPerRoom: resp.PricePerNightPerRoom,
		TotalPrice:           resp.TotalPrice,
		GuestName:            resp.GuestName,
		Phone:                resp.Phone,
		WhatsAppURL:          resp.WhatsAppURL,
	}
}
