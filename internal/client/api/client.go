package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/pkg/api"
)

// DefaultTimeout ограничивает каждый отдельный запрос
const DefaultTimeout = 30 * time.Second

const userAgent = "matrimony-client"

// maxResponseBody ограничивает размер читаемого тела ответа
const maxResponseBody = 10 << 20

// Client is the session-aware REST client. It attaches the stored access
// token to every request, enforces a per-call timeout and keeps the own
// profile in the local cache. Configuration is fixed at construction.
type Client struct {
	httpClient  *http.Client
	store       storage.SessionStore
	logger      *slog.Logger
	now         func() time.Time
	baseURL     string
	cachePolicy CachePolicy
	timeout     time.Duration
	maxBody     int64
}

// Option настраивает Client при создании
type Option func(*Client)

// WithTimeout задает таймаут одного запроса. Значение <= 0 отключает таймаут.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithCachePolicy задает политику кэша профиля
func WithCachePolicy(p CachePolicy) Option {
	return func(c *Client) { c.cachePolicy = p }
}

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient подменяет транспорт (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, store storage.SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		store:       store,
		timeout:     DefaultTimeout,
		cachePolicy: CacheForever(),
		logger:      slog.Default(),
		now:         time.Now,
		maxBody:     maxResponseBody,
		httpClient:  &http.Client{CheckRedirect: checkRedirect},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// checkRedirect ограничивает число редиректов и не выпускает токен
// за пределы исходного хоста
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return fmt.Errorf("stopped after 10 redirects")
	}
	if req.URL.Host != via[0].URL.Host {
		req.Header.Del("Authorization")
	}
	return nil
}

// RequestOptions описывает один вызов API
type RequestOptions struct {
	Body    any               // сериализуется в JSON; json.RawMessage отправляется как есть
	Query   url.Values        // query параметры
	Headers map[string]string // дополнительные заголовки, перекрывают стандартные
	Method  string            // по умолчанию GET
}

// Do issues a request to endpoint and decodes the response envelope.
// The envelope is returned verbatim: a success=false body with HTTP 200 is
// not an error. Non-2xx statuses yield *APIError, a fired deadline yields
// ErrTimeout. Nothing is retried.
func Do[T any](ctx context.Context, c *Client, endpoint string, opts RequestOptions) (*api.Response[T], error) {
	body, err := c.doRequest(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}

	resp := &api.Response[T]{}

	// 204 No Content и пустое тело считаем успехом без данных
	if len(bytes.TrimSpace(body)) == 0 {
		resp.Success = true
		return resp, nil
	}

	if err := json.Unmarshal(body, resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return resp, nil
}

// doRequest выполняет HTTP запрос и возвращает тело успешного ответа
func (c *Client) doRequest(ctx context.Context, endpoint string, opts RequestOptions) ([]byte, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + endpoint
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	if opts.Body != nil {
		data, err := encodeBody(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	// Токен берется из хранилища при каждом вызове
	if token := c.accessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			"method", method,
			"path", endpoint,
			"request_id", requestID,
			"error", err,
		)
		return nil, c.classifyTransportError(ctx, method, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа (дедлайн продолжает действовать)
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, c.classifyTransportError(ctx, method, endpoint, err)
	}
	if int64(len(respBody)) > c.maxBody {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidResponse, c.maxBody)
	}

	c.logger.Debug("HTTP request",
		"method", method,
		"path", endpoint,
		"status", resp.StatusCode,
		"duration_ms", c.now().Sub(start).Milliseconds(),
		"request_id", requestID,
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// accessToken возвращает сохраненный access token или пустую строку
func (c *Client) accessToken(ctx context.Context) string {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			c.logger.Warn("failed to read session, sending request without token", "error", err)
		}
		return ""
	}
	return session.AccessToken
}

func (c *Client) classifyTransportError(ctx context.Context, method, endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s after %s", ErrTimeout, method, endpoint, c.timeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request canceled: %w", err)
	}
	return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, endpoint, err)
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(body)
	}
}
