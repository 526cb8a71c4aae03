package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartika-hms/booking-gateway/internal/domain"
	"github.com/kartika-hms/booking-gateway/internal/integrations/inventoryservice"
	"github.com/kartika-hms/booking-gateway/pkg/ptr"
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
	getErr      error
	createErr   error
	whatsAppURL string

	gotPayload  *inventoryservice.GuestBookingPayload
	createCalls int
}

func (f *fakeInventoryClient) GetAvailability(_ context.Context, _ domain.DateRange, _ *domain.RoomType) ([]domain.RoomTypeAvailability, error) {
	return f.rooms, f.getErr
}

func (f *fakeInventoryClient) CreateGuestBooking(_ context.Context, payload *inventoryservice.GuestBookingPayload) (string, error) {
	f.createCalls++
	f.gotPayload = payload
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.whatsAppURL, nil
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

func validRequest() *Request {
	return &Request{
		CheckIn:   date(2025, time.June, 1),
		CheckOut:  date(2025, time.June, 3),
		RoomType:  domain.RoomTypeDeluxe,
		Rooms:     2,
		Guests:    8,
		GuestName: "  Budi Santoso  ",
		Phone:     "081234567890",
	}
}

func TestExecute_Success(t *testing.T) {
	client := &fakeInventoryClient{
		rooms:       deluxeRooms(3),
		whatsAppURL: "https://wa.me/6281112223334?text=booking",
	}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	req := validRequest()
	req.Email = ptr.Ptr("  budi@example.com ")
	req.Notes = ptr.Ptr("late check-in")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, int64(2_000_000), resp.TotalPrice)
	assert.Equal(t, "https://wa.me/6281112223334?text=booking", resp.WhatsAppURL)
	assert.Equal(t, "6281234567890", resp.Phone)
	assert.Equal(t, "Budi Santoso", resp.GuestName)

	// Payload собирается из нормализованных данных
	payload := client.gotPayload
	require.NotNil(t, payload)
	assert.Equal(t, "deluxe", payload.RoomType)
	assert.Equal(t, 2, payload.Rooms)
	assert.Equal(t, 8, payload.Guests)
	assert.Equal(t, "2025-06-01", payload.CheckIn)
	assert.Equal(t, "2025-06-03", payload.CheckOut)
	assert.Equal(t, "Budi Santoso", payload.GuestName)
	assert.Equal(t, "6281234567890", payload.Phone)
	require.NotNil(t, payload.Email)
	assert.Equal(t, "budi@example.com", *payload.Email)
	require.NotNil(t, payload.Notes)
	assert.Equal(t, "late check-in", *payload.Notes)
}

func TestExecute_EmptyOptionalFieldsOmitted(t *testing.T) {
	client := &fakeInventoryClient{rooms: deluxeRooms(3), whatsAppURL: "https://wa.me/1"}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	req := validRequest()
	req.Email = ptr.Ptr("   ")
	req.Notes = ptr.Ptr("")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Пустые после trim значения не попадают в payload
	assert.Nil(t, client.gotPayload.Email)
	assert.Nil(t, client.gotPayload.Notes)
}

func TestExecute_NoBookingWhenCapacityExceeded(t *testing.T) {
	client := &fakeInventoryClient{rooms: deluxeRooms(3)}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	req := validRequest()
	req.Guests = 9

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// Внешний вызов не выполняется при провале проверок
	assert.Zero(t, client.createCalls)
}

func TestExecute_NoBookingWhenInsufficientInventory(t *testing.T) {
	client := &fakeInventoryClient{rooms: deluxeRooms(1)}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Zero(t, client.createCalls)
}

func TestExecute_GuestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "empty guest name", mutate: func(req *Request) { req.GuestName = "   " }},
		{name: "phone without digits", mutate: func(req *Request) { req.Phone = "call me" }},
		{name: "zero rooms", mutate: func(req *Request) { req.Rooms = 0 }},
		{name: "unknown room type", mutate: func(req *Request) { req.RoomType = "villa" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeInventoryClient{rooms: deluxeRooms(3)}
			uc := newTestUseCase(client, date(2025, time.June, 1))

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, client.createCalls)
		})
	}
}

func TestExecute_MissingRedirectTarget(t *testing.T) {
	client := &fakeInventoryClient{
		rooms:     deluxeRooms(3),
		createErr: inventoryservice.ErrMissingRedirectTarget,
	}
	uc := newTestUseCase(client, date(2025, time.June, 1))

	_, err := uc.Execute(context.Background(), validRequest())

	// Сентинел клиента доступен через цепочку, несмотря на обертку usecase
	require.ErrorIs(t, err, inventoryservice.ErrMissingRedirectTarget)
	require.ErrorIs(t, err, ErrInternal)
}
