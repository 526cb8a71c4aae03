package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedTimeProvider провайдер с фиксированной датой для тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// fakeInventoryClient фейковый клиент InventoryService
type fakeInventoryClient struct {
	rooms        []domain.RoomTypeAvailability
	err          error
	gotDateRange domain.DateRange
	gotRoomType  *domain.RoomType
}

func (f *fakeInventoryClient) GetAvailability(_ context.Context, dateRange domain.DateRange, roomType *domain.RoomType) ([]domain.RoomTypeAvailability, error) {
	f.gotDateRange = dateRange
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

func TestExecute_Success(t *testing.T) {
	client := &fakeInventoryClient{
		rooms: []domain.RoomTypeAvailability{
			{RoomType: domain.RoomTypeSuperior, BasePrice: 400000, CurrentPrice: 400000, AvailableRooms: 5, TotalRooms: 8},
			{RoomType: domain.RoomTypeDeluxe, BasePrice: 600000, CurrentPrice: 500000, AvailableRooms: 3, TotalRooms: 10},
		},
	}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  date(2025, time.June, 1),
		CheckOut: date(2025, time.June, 3),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.Len(t, resp.Rooms, 2)
	assert.Nil(t, client.gotRoomType)
	assert.Equal(t, date(2025, time.June, 1), client.gotDateRange.CheckIn)
}

func TestExecute_PassesRoomTypeFilter(t *testing.T) {
	client := &fakeInventoryClient{}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  date(2025, time.June, 10),
		CheckOut: date(2025, time.June, 12),
		RoomType: ptr.Ptr(domain.RoomTypeDeluxe),
	})
	require.NoError(t, err)

	require.NotNil(t, client.gotRoomType)
	assert.Equal(t, domain.RoomTypeDeluxe, *client.gotRoomType)

	// Пустой снапшот - валидный ответ
	assert.Empty(t, resp.Rooms)
}

func TestExecute_UnknownRoomType(t *testing.T) {
	uc := newTestUseCase(&fakeInventoryClient{}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  date(2025, time.June, 1),
		CheckOut: date(2025, time.June, 3),
		RoomType: ptr.Ptr(domain.RoomType("penthouse")),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DateValidation(t *testing.T) {
	now := date(2025, time.June, 1)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{name: "missing dates", wantErr: domain.ErrMissingDate},
		{name: "check-in in past", checkIn: date(2025, time.May, 30), checkOut: date(2025, time.June, 3), wantErr: domain.ErrCheckInInPast},
		{name: "inverted range", checkIn: date(2025, time.June, 5), checkOut: date(2025, time.June, 3), wantErr: domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeInventoryClient{}, now)

			_, err := uc.Execute(context.Background(), &Request{CheckIn: tt.checkIn, CheckOut: tt.checkOut})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UpstreamErrorPassedThrough(t *testing.T) {
	upstreamErr := errors.New("availability service is down")
	uc := newTestUseCase(&fakeInventoryClient{err: upstreamErr}, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  date(2025, time.June, 1),
		CheckOut: date(2025, time.June, 3),
	})

	// Исходная ошибка остается в цепочке вместе с ErrInternal
	require.ErrorIs(t, err, upstreamErr)
	require.ErrorIs(t, err, ErrInternal)
}
