package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/ctxmeta"
)

// Проверка, что Client удовлетворяет интерфейсу UserClient.
var _ ports.UserClient = (*Client)(nil)

const maxErrorBody = 1024

// Client — синхронный HTTP-клиент к сервису пользователей.
// Классификация ответов:
//   - 2xx → пользователь существует, тело разбирается в сущность;
//   - 4xx → ports.ErrUserRejected (пользователь не разрешён);
//   - 5xx и сетевые сбои → неклассифицированная ошибка, проходит наверх как есть.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        ports.Logger
}

// New — конструктор. Таймаут запроса задаётся здесь, а не вызывающим кодом:
// политика таймаутов принадлежит клиенту удалённого сервиса.
func New(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// GetUserByID — запрашивает пользователя по идентификатору.
func (c *Client) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Прокидываем request_id для сквозного трейсинга логов между сервисами.
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var user domain.User
		if decErr := json.NewDecoder(resp.Body).Decode(&user); decErr != nil {
			return nil, fmt.Errorf("decode user response: %w", decErr)
		}
		return &user, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status=%d body=%q", ports.ErrUserRejected, resp.StatusCode, body)

	default:
		c.log.Warnf(ctx, "user service failure status=%d url=%s", resp.StatusCode, url)
		return nil, fmt.Errorf("user service failure: status=%d", resp.StatusCode)
	}
}
