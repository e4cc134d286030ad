package plannerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Travel Planner
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Travel Planner
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPickupPoints получает точки посадки по списку идентификаторов
func (c *Client) GetPickupPoints(ctx context.Context, ids []string) ([]PickupPoint, error) {
	endpoint := fmt.Sprintf("%s/api/trip-pickup-points", c.baseURL)

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var points []PickupPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return points, nil
}

// GetPickupPointsWithGracefulDegradation получает точки посадки с graceful degradation
// При недоступности Travel Planner возвращает ErrServiceDegraded,
// что позволяет агрегатору вернуть пассажиров без точек посадки
func (c *Client) GetPickupPointsWithGracefulDegradation(ctx context.Context, ids []string) ([]PickupPoint, error) {
	c.log.Info("Fetching %d pickup points from Travel Planner", len(ids))

	points, err := c.GetPickupPoints(ctx, ids)
	if err != nil {
		// Любая ошибка интеграции не должна ронять агрегацию -
		// возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Travel Planner unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully fetched %d pickup points", len(points))
	return points, nil
}
