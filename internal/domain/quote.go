package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded возвращается, когда количество гостей превышает
	// вместимость запрошенных номеров (MaxGuestsPerRoom на номер)
	ErrCapacityExceeded = errors.New("booking quote: guest count exceeds room capacity")

	// ErrZeroAvailability возвращается, когда по типу номера нет ни одного
	// свободного номера. Отдельный случай от ErrInsufficientInventory,
	// чтобы вызывающая сторона могла показать другое сообщение
	ErrZeroAvailability = errors.New("booking quote: no rooms available")

	// ErrInsufficientInventory возвращается, когда свободные номера есть,
	// но их меньше, чем запрошено
	ErrInsufficientInventory = errors.New("booking quote: not enough rooms available")
)

// InsufficientInventoryError carries the actual available room count so the
// caller can offer a reduced quantity. Unwraps to ErrInsufficientInventory.
type InsufficientInventoryError struct {
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("booking quote: requested %d rooms, only %d available", e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// BookingQuote represents a computed, non-persisted price and feasibility
// result for a specific booking request. Money values are integer Rupiah.
type BookingQuote struct {
	Nights               int
	RoomsRequested       int
	PricePerNightPerRoom int64
	TotalPrice           int64
	CapacityOk           bool
	AvailabilityOk       bool
}

// ComputeQuote turns one availability snapshot plus a room/guest request
// into a priced quote. Pure function: identical inputs always yield an
// identical quote.
//
// Порядок проверок:
// 1. Вместимость: guests <= rooms * MaxGuestsPerRoom, иначе ErrCapacityExceeded.
//    Проверяется до инвентаря — при нарушении расчёт цены не производится.
// 2. Инвентарь: ErrZeroAvailability при нуле свободных номеров,
//    *InsufficientInventoryError когда свободных меньше запрошенного.
// 3. Цена: nights * rooms * CurrentPrice (цена после скидки).
func ComputeQuote(av RoomTypeAvailability, nights, rooms, guests int) (*BookingQuote, error) {
	if guests > rooms*MaxGuestsPerRoom {
		return nil, ErrCapacityExceeded
	}

	if av.IsSoldOut() {
		return nil, ErrZeroAvailability
	}

	if rooms > av.AvailableRooms {
		return nil, &InsufficientInventoryError{
			Requested: rooms,
			Available: av.AvailableRooms,
		}
	}

	return &BookingQuote{
		Nights:               nights,
		RoomsRequested:       rooms,
		PricePerNightPerRoom: av.CurrentPrice,
		TotalPrice:           int64(nights) * int64(rooms) * av.CurrentPrice,
		CapacityOk:           true,
		AvailabilityOk:       true,
	}, nil
}
