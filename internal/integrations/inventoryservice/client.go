package inventoryservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kartika-hms/booking-gateway/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CredentialProvider отдает токен для запросов к InventoryService.
// Хранилище сессий - внешний коллаборатор, поэтому токен инжектируется,
// а не читается из глобального состояния
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider провайдер с фиксированным токеном из конфигурации.
// Пустой токен означает анонимный доступ к публичным endpoint'ам
type StaticTokenProvider struct {
	token string
}

func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	return p.token, nil
}

// MetricsRecorder интерфейс для записи метрик исходящих запросов
type MetricsRecorder interface {
	ObserveUpstreamRequest(target, method string, status int, duration time.Duration)
}

const metricsTarget = "inventoryservice"

// Client клиент для работы с InventoryService (инвентарь и цены номеров)
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialProvider
	metrics    MetricsRecorder // может быть nil, если метрики выключены
	log        Logger
}

// NewClient создает новый экземпляр клиента InventoryService
func NewClient(baseURL string, timeout time.Duration, creds CredentialProvider, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		creds:   creds,
		metrics: metrics,
		log:     log,
	}
}

// GetAvailability запрашивает доступность номеров на указанный диапазон дат.
// roomType == nil означает все типы номеров.
//
// Порядок записей сохраняется как в ответе сервиса. Пустой список - валидный
// результат ("на эти даты ничего нет"), не ошибка. Записи с отсутствующими
// обязательными полями или неизвестным типом номера отбрасываются с
// логированием, а не валят весь запрос.
func (c *Client) GetAvailability(ctx context.Context, dateRange domain.DateRange, roomType *domain.RoomType) ([]domain.RoomTypeAvailability, error) {
	query := url.Values{}
	query.Set("check_in", dateRange.CheckIn.Format(domain.DateFormat))
	query.Set("check_out", dateRange.CheckOut.Format(domain.DateFormat))
	if roomType != nil {
		query.Set("type", string(*roomType))
	}

	endpoint := fmt.Sprintf("%s/public/availability?%s", c.baseURL, query.Encode())

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: upstreamErrorBody(body)}
	}

	var raw availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability response: %v", ErrInvalidResponse, err)
	}

	result := make([]domain.RoomTypeAvailability, 0, len(raw.Data))
	for i, entry := range raw.Data {
		av, reason := entry.toDomain()
		if reason != "" {
			c.log.Warn("GetAvailability: dropping malformed entry #%d: %s", i, reason)
			continue
		}
		result = append(result, av)
	}

	return result, nil
}

// CreateGuestBooking отправляет бронирование во внешний сервис и возвращает
// WhatsApp ссылку для продолжения оформления
func (c *Client) CreateGuestBooking(ctx context.Context, payload *GuestBookingPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal booking payload: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/public/guest-bookings", c.baseURL)

	resp, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, Body: upstreamErrorBody(respBody)}
	}

	var created guestBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, err)
	}

	if created.Data.WhatsAppURL == "" {
		return "", ErrMissingRedirectTarget
	}

	return created.Data.WhatsAppURL, nil
}

// do выполняет HTTP запрос с авторизацией и метриками
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get credentials: %v", ErrInternal, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveUpstreamRequest(metricsTarget, method, 0, time.Since(start))
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(metricsTarget, method, resp.StatusCode, time.Since(start))
	}

	return resp, nil
}

// upstreamErrorBody извлекает сообщение из тела ошибки InventoryService.
// Тело неизвестного формата возвращается как есть
func upstreamErrorBody(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}

// toDomain нормализует сырую запись в снапшот доступности.
// Возвращает причину отбраковки вместо ошибки: частично некорректный ответ
// сервиса не должен валить весь запрос
func (e *availabilityEntry) toDomain() (domain.RoomTypeAvailability, string) {
	if e.Type == nil {
		return domain.RoomTypeAvailability{}, "missing room type"
	}

	roomType := domain.RoomType(*e.Type)
	if !roomType.IsValid() {
		return domain.RoomTypeAvailability{}, fmt.Sprintf("unknown room type %q", *e.Type)
	}

	if e.BasePrice == nil || e.CurrentPrice == nil || e.AvailableRooms == nil || e.TotalRooms == nil {
		return domain.RoomTypeAvailability{}, fmt.Sprintf("room type %q is missing required numeric fields", *e.Type)
	}

	if *e.AvailableRooms < 0 || *e.TotalRooms <= 0 || *e.AvailableRooms > *e.TotalRooms {
		return domain.RoomTypeAvailability{}, fmt.Sprintf("room type %q has inconsistent room counts %d/%d",
			*e.Type, *e.AvailableRooms, *e.TotalRooms)
	}

	// Цены в Rupiah неотрицательные, текущая цена не выше базовой
	if *e.BasePrice < 0 || *e.CurrentPrice < 0 || *e.CurrentPrice > *e.BasePrice {
		return domain.RoomTypeAvailability{}, fmt.Sprintf("room type %q has inconsistent prices %d/%d",
			*e.Type, *e.CurrentPrice, *e.BasePrice)
	}

	av := domain.RoomTypeAvailability{
		RoomType:       roomType,
		BasePrice:      *e.BasePrice,
		CurrentPrice:   *e.CurrentPrice,
		AvailableRooms: *e.AvailableRooms,
		TotalRooms:     *e.TotalRooms,
	}

	// Скидка информационная; при отсутствии в ответе выводится из цен
	if e.DiscountPercent != nil {
		av.DiscountPercent = *e.DiscountPercent
	} else if av.BasePrice > 0 && av.CurrentPrice < av.BasePrice {
		av.DiscountPercent = int((av.BasePrice - av.CurrentPrice) * 100 / av.BasePrice)
	}

	return av, ""
}
