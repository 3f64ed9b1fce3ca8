package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/stravasync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс клиента Strava API для merge engine
// и authenticator'а
type ClientAPI interface {
	// ExchangeToken выполняет OAuth обмен: refresh token или authorization
	// code на пару access/refresh токенов
	ExchangeToken(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error)

	// ListActivities возвращает одну страницу активностей атлета,
	// newest first
	ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]api.SummaryActivity, error)

	// GetActivity возвращает detail активности (perceived exertion, сплиты)
	GetActivity(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error)

	// GetActivityZones возвращает гистограммы зон активности.
	// Отсутствие зон — не ошибка: возвращается пустой slice.
	GetActivityZones(ctx context.Context, accessToken string, id int64) ([]api.ActivityZone, error)
}

// Client представляет HTTP клиент Strava API
type Client struct {
	httpClient *http.Client
	authURL    string
	baseURL    string
}

// Compile-time проверка реализации интерфейса
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент. authURL — OAuth token endpoint,
// baseURL — корень REST API (в тестах оба указывают на httptest сервер).
func NewClient(authURL, baseURL string) *Client {
	return &Client{
		authURL: authURL,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// ExchangeToken обменивает refresh token или authorization code на токены
func (c *Client) ExchangeToken(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, c.authURL, "", req, &resp); err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return &resp, nil
}

// ListActivities возвращает одну страницу активностей, newest first
func (c *Client) ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]api.SummaryActivity, error) {
	var resp []api.SummaryActivity
	url := fmt.Sprintf("%s/athlete/activities?page=%d&per_page=%d", c.baseURL, page, perPage)
	if err := c.doRequest(ctx, http.MethodGet, url, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list activities failed: %w", err)
	}
	return resp, nil
}

// GetActivity возвращает detail активности
func (c *Client) GetActivity(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error) {
	var resp api.DetailedActivity
	url := fmt.Sprintf("%s/activities/%d", c.baseURL, id)
	if err := c.doRequest(ctx, http.MethodGet, url, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get activity %d failed: %w", id, err)
	}
	return &resp, nil
}

// GetActivityZones возвращает гистограммы зон. 404 означает, что зоны
// для активности не записаны — это пустой результат, не ошибка.
func (c *Client) GetActivityZones(ctx context.Context, accessToken string, id int64) ([]api.ActivityZone, error) {
	var resp []api.ActivityZone
	url := fmt.Sprintf("%s/activities/%d/zones", c.baseURL, id)
	err := c.doRequest(ctx, http.MethodGet, url, accessToken, nil, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity zones %d failed: %w", id, err)
	}
	return resp, nil
}

// StatusError представляет не-2xx ответ API
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// doRequest выполняет HTTP запрос: JSON тело, опциональный bearer token,
// декодирование ответа в result
func (c *Client) doRequest(ctx context.Context, method, url, accessToken string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
