package domain

import (
	"errors"
	"time"
)

var (
	// ErrMissingDate возвращается, когда не указана дата заезда или выезда
	ErrMissingDate = errors.New("date range: check-in and check-out dates are required")

	// ErrCheckInInPast возвращается, когда дата заезда раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("date range: check-in date is in the past")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("date range: check-out date must be after check-in date")
)

// DateRange represents a validated check-in/check-out pair.
// Both dates are calendar dates, the time-of-day component is ignored.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange validates a check-in/check-out pair against the caller's
// current date and returns a normalized range.
//
// "today" приходит параметром, а не читается из глобальных часов,
// чтобы валидацию можно было тестировать на фиксированной дате.
//
// Порядок проверок:
// 1. Обе даты указаны (ErrMissingDate)
// 2. Дата заезда не в прошлом (ErrCheckInInPast)
// 3. Дата выезда строго позже даты заезда (ErrInvalidRange)
func NewDateRange(checkIn, checkOut, today time.Time) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, ErrMissingDate
	}

	checkInDay := truncateToDay(checkIn)
	checkOutDay := truncateToDay(checkOut)
	todayDay := truncateToDay(today)

	if checkInDay.Before(todayDay) {
		return DateRange{}, ErrCheckInInPast
	}

	if !checkOutDay.After(checkInDay) {
		return DateRange{}, ErrInvalidRange
	}

	return DateRange{
		CheckIn:  checkInDay,
		CheckOut: checkOutDay,
	}, nil
}

// Nights returns the whole-day count between check-in and check-out.
// Always >= 1 for a range produced by NewDateRange.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn) / (24 * time.Hour))
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
