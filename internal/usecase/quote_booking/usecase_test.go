package quote_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeInventoryClient struct {
	rooms       []domain.RoomTypeAvailability
	err         error
	gotRoomType *domain.RoomType
	calls       int
}

func (f *fakeInventoryClient) GetAvailability(_ context.Context, _ domain.DateRange, roomType *domain.RoomType) ([]domain.RoomTypeAvailability, error) {
	f.calls++
	f.gotRoomType = roomType
	return f.rooms, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(client *fakeInventoryClient, now time.Time) *UseCase {
	uc := NewUseCase(client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func deluxeRooms(available int) []domain.RoomTypeAvailability {
	return []domain.RoomTypeAvailability{
		{
			RoomType:        domain.RoomTypeDeluxe,
			BasePrice:       600000,
			CurrentPrice:    500000,
			DiscountPercent: 16,
			AvailableRooms:  available,
			TotalRooms:      10,
		},
	}
}

func deluxeRequest(rooms, guests int) *Request {
	return &Request{
		CheckIn:  date(2025, time.June, 1),
		CheckOut: date(2025, time.June, 3),
		RoomType: domain.RoomTypeDeluxe,
		Rooms:    rooms,
		Guests:   guests,
	}
}

func TestExecute_Success(t *testing.T) {
	client := &fakeInventoryClient{rooms: deluxeRooms(3)}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	resp, err := uc.Execute(context.Background(), deluxeRequest(2, 8))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, int64(500000), resp.PricePerNightPerRoom)
	assert.Equal(t, int64(600000), resp.BasePricePerNight)
	assert.Equal(t, int64(100000), resp.SavingsPerNight)
	assert.Equal(t, int64(2_000_000), resp.TotalPrice)
	assert.Equal(t, 3, resp.AvailableRooms)
	assert.True(t, resp.CapacityOk)
	assert.True(t, resp.AvailabilityOk)

	// Фильтр по типу уходит в InventoryService
	require.NotNil(t, client.gotRoomType)
	assert.Equal(t, domain.RoomTypeDeluxe, *client.gotRoomType)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc := newTestUseCase(&fakeInventoryClient{rooms: deluxeRooms(3)}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), deluxeRequest(2, 9))
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestExecute_ZeroAvailability(t *testing.T) {
	uc := newTestUseCase(&fakeInventoryClient{rooms: deluxeRooms(0)}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), deluxeRequest(1, 2))
	require.ErrorIs(t, err, domain.ErrZeroAvailability)
}

func TestExecute_RoomTypeAbsentFromResponse(t *testing.T) {
	// Сервис не вернул запрошенный тип: равнозначно нулевой доступности
	uc := newTestUseCase(&fakeInventoryClient{}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), deluxeRequest(1, 2))
	require.ErrorIs(t, err, domain.ErrZeroAvailability)
}

func TestExecute_InsufficientInventory(t *testing.T) {
	uc := newTestUseCase(&fakeInventoryClient{rooms: deluxeRooms(3)}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), deluxeRequest(4, 8))

	var insufficientErr *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 3, insufficientErr.Available)
}

func TestExecute_InputValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "unknown room type", req: &Request{CheckIn: date(2025, time.June, 1), CheckOut: date(2025, time.June, 3), RoomType: "suite", Rooms: 1, Guests: 1}},
		{name: "zero rooms", req: deluxeRequest(0, 1)},
		{name: "zero guests", req: deluxeRequest(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeInventoryClient{rooms: deluxeRooms(3)}
			uc := newTestUseCase(client, date(2025, time.June, 1))

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			// До внешнего сервиса запрос не доходит
			assert.Zero(t, client.calls)
		})
	}
}

func TestExecute_UpstreamErrorWrappedWithInternal(t *testing.T) {
	upstreamErr := errors.New("availability service is down")
	uc := newTestUseCase(&fakeInventoryClient{err: upstreamErr}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), deluxeRequest(1, 2))

	require.ErrorIs(t, err, upstreamErr)
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_StaleDatesRejected(t *testing.T) {
	// Даты, валидные на момент выбора, отклоняются при пересчёте позже
	uc := newTestUseCase(&fakeInventoryClient{rooms: deluxeRooms(3)}, date(2025, time.June, 2))

	_, err := uc.Execute(context.Background(), deluxeRequest(1, 2))
	require.ErrorIs(t, err, domain.ErrCheckInInPast)
}
