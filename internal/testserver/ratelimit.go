package testserver

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitMessage возвращается с HTTP 429
const RateLimitMessage = "rate limit exceeded, please try again later"

// WithRateLimit ограничивает число запросов с одного адреса за window
func WithRateLimit(rate int, window time.Duration) Option {
	return func(b *Backend) {
		if rate > 0 && window > 0 {
			b.limiter = newRateLimiter(rate, window)
		}
	}
}

// rateLimiter фиксированное окно на ключ (IP адрес)
type rateLimiter struct {
	buckets map[string]*bucket
	rate    int
	window  time.Duration
	mu      sync.Mutex
}

type bucket struct {
	windowStart time.Time
	tokens      int
}

func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
	}
}

// allow списывает токен и возвращает false, если окно исчерпано
func (rl *rateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{tokens: rl.rate, windowStart: now}
		rl.buckets[key] = b
	}

	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

func rateLimit(rl *rateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !rl.allow(key, time.Now()) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				writeError(w, http.StatusTooManyRequests, RateLimitMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
