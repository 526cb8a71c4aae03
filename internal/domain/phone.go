package domain

import "strings"

// NormalizePhone приводит телефонный номер гостя к международному формату:
// - удаляет все символы, кроме цифр
// - ведущий "0" заменяется на код страны "62"
// - если номер ещё не начинается с "62", код страны добавляется в начало
//
// Примеры:
// - "081234567890"  -> "6281234567890"
// - "81234567890"   -> "6281234567890"
// - "+62 812-3456"  -> "628123456"
func NormalizePhone(raw string) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "0") {
		return CountryCallingCode + digits[1:]
	}

	if !strings.HasPrefix(digits, CountryCallingCode) {
		return CountryCallingCode + digits
	}

	return digits
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
