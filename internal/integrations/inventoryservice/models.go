package inventoryservice

// availabilityResponse модель ответа GET /public/availability
type availabilityResponse struct {
	Data []availabilityEntry `json:"data"`
}

// availabilityEntry сырая запись о доступности типа номера.
// Поля-указатели: внешний сервис не полностью доверенный, записи с
// отсутствующими обязательными полями отбрасываются при нормализации.
type availabilityEntry struct {
	Type            *string `json:"type"`
	BasePrice       *int64  `json:"base_price"`
	CurrentPrice    *int64  `json:"current_price"`
	DiscountPercent *int    `json:"discount_percent"`
	AvailableRooms  *int    `json:"available_rooms"`
	TotalRooms      *int    `json:"total_rooms"`
}

// GuestBookingPayload тело запроса POST /public/guest-bookings.
// Собирается только после успешных проверок вместимости и доступности.
type GuestBookingPayload struct {
	RoomType  string  `json:"room_type"`
	Rooms     int     `json:"rooms"`
	Guests    int     `json:"guests"`
	CheckIn   string  `json:"check_in"`  // YYYY-MM-DD
	CheckOut  string  `json:"check_out"` // YYYY-MM-DD
	GuestName string  `json:"guest_name"`
	Phone     string  `json:"phone"` // нормализованный, только цифры с кодом страны
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// guestBookingResponse модель ответа на создание бронирования
type guestBookingResponse struct {
	Data struct {
		WhatsAppURL string `json:"whatsapp_url"`
	} `json:"data"`
}

// ErrorResponse модель ошибки от InventoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
