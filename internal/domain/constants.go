package domain

// Business policy constants
const (
	// MaxGuestsPerRoom каноническое правило вместимости: не более четырёх
	// гостей на один запрошенный номер
	MaxGuestsPerRoom = 4

	// CountryCallingCode код страны, подставляемый при нормализации
	// телефонных номеров гостей (Индонезия)
	CountryCallingCode = "62"

	MaxGuestNameLength = 100
	MaxNotesLength     = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
