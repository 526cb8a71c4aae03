package domain

// RoomType represents one of the fixed room categories of the hotel
type RoomType string

const (
	RoomTypeSuperior  RoomType = "superior"
	RoomTypeDeluxe    RoomType = "deluxe"
	RoomTypeExecutive RoomType = "executive"
)

// AllRoomTypes список всех категорий номеров
// Используется для валидации входных данных
var AllRoomTypes = []RoomType{
	RoomTypeSuperior,
	RoomTypeDeluxe,
	RoomTypeExecutive,
}

// IsValid returns true if the room type is one of the known categories
func (t RoomType) IsValid() bool {
	for _, known := range AllRoomTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RoomTypeAvailability represents the inventory snapshot of a single room
// type for a requested stay. Prices are integer Rupiah per night.
// The snapshot is constructed per availability query and never cached.
type RoomTypeAvailability struct {
	RoomType        RoomType
	BasePrice       int64 // цена за ночь до скидки
	CurrentPrice    int64 // цена за ночь после скидки, используется для расчёта
	DiscountPercent int
	AvailableRooms  int
	TotalRooms      int
}

// IsSoldOut returns true if the room type has no available rooms
func (a *RoomTypeAvailability) IsSoldOut() bool {
	return a.AvailableRooms <= 0
}

// IsPartiallyAvailable returns true if some but not all rooms are available
func (a *RoomTypeAvailability) IsPartiallyAvailable() bool {
	return a.AvailableRooms > 0 && a.AvailableRooms < a.TotalRooms
}

// IsFullyAvailable returns true if all rooms of the type are available
func (a *RoomTypeAvailability) IsFullyAvailable() bool {
	return a.AvailableRooms == a.TotalRooms
}

// CanSatisfy returns true if the requested room count can be served
func (a *RoomTypeAvailability) CanSatisfy(rooms int) bool {
	return rooms > 0 && rooms <= a.AvailableRooms
}

// SavingsPerNight returns the per-night discount amount (basePrice is
// informational, quotes are always priced with CurrentPrice)
func (a *RoomTypeAvailability) SavingsPerNight() int64 {
	if a.BasePrice <= a.CurrentPrice {
		return 0
	}
	return a.BasePrice - a.CurrentPrice
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (a *RoomTypeAvailability) OccupancyRate() float64 {
	if a.TotalRooms == 0 {
		return 0
	}
	occupied := a.TotalRooms - a.AvailableRooms
	return float64(occupied) / float64(a.TotalRooms) * 100
}
