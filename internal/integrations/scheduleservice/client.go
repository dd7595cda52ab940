package scheduleservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент фида доступности аудиторий (25Live availabilitydata)
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента фида
func NewClient(baseURL string, timeout time.Duration, pageSize int, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RoomDayAvailability получает события аудитории начиная с указанной даты
func (c *Client) RoomDayAvailability(ctx context.Context, roomID int64, date types.CivilDate) ([]domain.Event, error) {
	// Параметры запроса фида availabilitydata.json
	params := url.Values{}
	params.Set("obj_cache_accl", "0")
	params.Set("start_dt", date.String()+"T00:00:00")
	params.Set("comptype", "availability_daily")
	params.Set("compsubject", "location")
	params.Set("page_size", strconv.Itoa(c.pageSize))
	params.Set("space_id", strconv.FormatInt(roomID, 10))
	params.Set("include", "closed blackouts pending related empty")
	params.Set("caller", "pro-AvailService.getData")

	requestURL := fmt.Sprintf("%s/availability/availabilitydata.json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return mapEvents(payload), nil
}

// RoomDayAvailabilityWithGracefulDegradation получает события аудитории
// с graceful degradation: при недоступности фида возвращает
// ErrServiceDegraded, и обновление оставляет предыдущее расписание аудитории.
func (c *Client) RoomDayAvailabilityWithGracefulDegradation(ctx context.Context, roomID int64, date types.CivilDate) ([]domain.Event, error) {
	events, err := c.RoomDayAvailability(ctx, roomID, date)
	if err != nil {
		// Аудитория неизвестна фиду - это бизнес-ошибка, пробрасываем дальше
		if errors.Is(err, ErrRoomNotFound) {
			c.log.Info("Schedule feed has no room id=%d", roomID)
			return nil, err
		}

		// Все остальное (недоступность, timeout, ошибки парсинга) -
		// graceful degradation
		c.log.Error("Schedule feed unavailable for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: room_id=%d, error=%v", ErrServiceDegraded, roomID, err)
	}

	c.log.Info("Fetched %d events for room id=%d starting %s", len(events), roomID, date)
	return events, nil
}
