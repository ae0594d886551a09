package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/matrimony-client/internal/client/storage/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient поднимает httptest сервер с handler и клиент поверх memory хранилища
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *memory.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := memory.New()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)

	return NewClient(srv.URL, store, opts...), store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// blockingHandler никогда не отвечает сам: запрос висит до отмены клиентом
// или до завершения теста
func blockingHandler(t *testing.T) http.Handler {
	t.Helper()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
}

// manualClock подменяемые часы для проверки TTL и expiresAt
type manualClock struct {
	now time.Time
	mu  sync.Mutex
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// callCounter считает запросы к одному handler
type callCounter struct {
	next  http.Handler
	calls int
	mu    sync.Mutex
}

func countCalls(next http.HandlerFunc) *callCounter {
	return &callCounter{next: next}
}

func (c *callCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	c.next.ServeHTTP(w, r)
}

func (c *callCounter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
