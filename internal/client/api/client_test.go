package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/client/storage/memory"
	"github.com/iudanet/matrimony-client/pkg/api"
)

// TestNewClient проверяет создание клиента со значениями по умолчанию
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", memory.New())

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.timeout)
	assert.Equal(t, CacheForever(), client.cachePolicy)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.logger)
	assert.NotNil(t, client.now)
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	fixed := time.Unix(1700000000, 0)

	client := NewClient("http://example.com", memory.New(),
		WithTimeout(5*time.Second),
		WithCachePolicy(CachePolicy{TTL: time.Minute, InvalidateOnLogin: true}),
		WithHTTPClient(hc),
		WithClock(func() time.Time { return fixed }),
		WithLogger(nil), // nil игнорируется
	)

	assert.Equal(t, 5*time.Second, client.timeout)
	assert.Equal(t, time.Minute, client.cachePolicy.TTL)
	assert.True(t, client.cachePolicy.InvalidateOnLogin)
	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, fixed, client.now())
	assert.NotNil(t, client.logger)
}

// TestDo_Headers проверяет стандартные заголовки и отсутствие Authorization без сессии
func TestDo_Headers(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, api.OK(&api.MasterItem{ID: "1", Name: "one"}))
	}))

	resp, err := Do[api.MasterItem](context.Background(), client, "/ping", RequestOptions{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "one", resp.Data.Name)
}

func TestDo_AttachesStoredToken(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	}))

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{
		AccessToken: "stored-token",
		UserID:      "user-1",
	}))

	_, err := Do[api.Empty](context.Background(), client, "/ping", RequestOptions{})
	require.NoError(t, err)
}

func TestDo_HeadersOverride(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer explicit", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	}))

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{AccessToken: "stored", UserID: "u"}))

	_, err := Do[api.Empty](context.Background(), client, "/ping", RequestOptions{
		Headers: map[string]string{
			"Content-Type":  "text/plain",
			"Authorization": "Bearer explicit",
		},
	})
	require.NoError(t, err)
}

func TestDo_BodyAndQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "b", r.URL.Query().Get("a"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"content":"hello"}`, string(body))

		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	}))

	_, err := Do[api.Empty](context.Background(), client, "/echo", RequestOptions{
		Method: http.MethodPost,
		Body:   api.SendMessageRequest{Content: "hello"},
		Query:  url.Values{"a": {"b"}},
	})
	require.NoError(t, err)
}

// TestDo_EnvelopePassThrough проверяет, что success=false при HTTP 200 не ошибка
func TestDo_EnvelopePassThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: false, Message: "Profile incomplete"})
	}))

	resp, err := Do[api.UserProfile](context.Background(), client, "/users/me/profile", RequestOptions{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Profile incomplete", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestDo_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := Do[api.Empty](context.Background(), client, "/nothing", RequestOptions{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestDo_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))

	_, err := Do[api.Empty](context.Background(), client, "/broken", RequestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// TestDo_APIError проверяет текст ошибки для не-2xx ответов
func TestDo_APIError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		status      int
	}{
		{
			name:        "server message",
			status:      http.StatusBadRequest,
			body:        `{"success":false,"message":"Email already registered"}`,
			wantMessage: "Email already registered",
		},
		{
			name:        "error field",
			status:      http.StatusForbidden,
			body:        `{"error":"forbidden"}`,
			wantMessage: "forbidden",
		},
		{
			name:        "no json body",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "HTTP 500: Internal Server Error",
		},
		{
			name:        "empty json",
			status:      http.StatusNotFound,
			body:        `{}`,
			wantMessage: "HTTP 404: Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := Do[api.Empty](context.Background(), client, "/fail", RequestOptions{})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, api.ErrorResponse{Message: "token expired"})
	}))

	_, err := Do[api.Empty](context.Background(), client, "/private", RequestOptions{})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(errors.New("other")))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: http.StatusForbidden}))
}

// TestDo_Timeout проверяет, что зависший запрос прерывается примерно через timeout
func TestDo_Timeout(t *testing.T) {
	const timeout = 100 * time.Millisecond

	client, _ := newTestClient(t, blockingHandler(t), WithTimeout(timeout))

	start := time.Now()
	_, err := Do[api.Empty](context.Background(), client, "/slow", RequestOptions{})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, 2*time.Second, "timeout must fire near the configured value")
}

func TestDo_CallerCancel(t *testing.T) {
	client, _ := newTestClient(t, blockingHandler(t), WithTimeout(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Do[api.Empty](ctx, client, "/slow", RequestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close() // порт закрыт: соединение будет отклонено

	client := NewClient(baseURL, memory.New(), WithLogger(discardLogger()))

	_, err := Do[api.Empty](context.Background(), client, "/anything", RequestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestDo_StoreErrorSendsWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	}))
	t.Cleanup(srv.Close)

	store := &storage.SessionStoreMock{
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			return nil, storage.ErrStorageClosed
		},
	}
	client := NewClient(srv.URL, store, WithLogger(discardLogger()))

	_, err := Do[api.Empty](context.Background(), client, "/ping", RequestOptions{})
	require.NoError(t, err)
	assert.Len(t, store.GetSessionCalls(), 1)
}

// TestDo_RedirectToOtherHostDropsToken проверяет, что токен не уходит на чужой хост
func TestDo_RedirectToOtherHostDropsToken(t *testing.T) {
	var foreignAuth []string
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignAuth = append(foreignAuth, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	}))
	t.Cleanup(foreign.Close)

	// тот же listener, но под другим именем хоста
	target := strings.Replace(foreign.URL, "127.0.0.1", "localhost", 1) + "/landing"
	client, store := newTestClient(t, http.RedirectHandler(target, http.StatusFound))

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{
		AccessToken: "secret-token",
		UserID:      "user-1",
	}))

	_, err := Do[api.Empty](context.Background(), client, "/ping", RequestOptions{})
	require.NoError(t, err)
	require.Len(t, foreignAuth, 1)
	assert.Empty(t, foreignAuth[0])
}

func TestDo_RedirectSameHostKeepsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/old", http.RedirectHandler("/new", http.StatusMovedPermanently))
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
	})
	client, store := newTestClient(t, mux)

	require.NoError(t, store.SaveSession(context.Background(), &storage.Session{
		AccessToken: "stored-token",
		UserID:      "user-1",
	}))

	_, err := Do[api.Empty](context.Background(), client, "/old", RequestOptions{})
	require.NoError(t, err)
}

func TestDo_ResponseTooLarge(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"` + strings.Repeat("x", 64) + `"}`))
	}))
	client.maxBody = 32

	_, err := Do[api.Empty](context.Background(), client, "/big", RequestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	client.maxBody = maxResponseBody
	resp, err := Do[api.Empty](context.Background(), client, "/big", RequestOptions{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
