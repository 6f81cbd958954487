package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/clinicsync/internal/server/handlers"
)

// RateLimiter ограничивает число запросов с одного адреса в пределах окна
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	now      func() time.Time
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.Mutex
	stopOnce sync.Once
}

// bucket счетчик запросов одного ключа в текущем окне
type bucket struct {
	windowStart time.Time
	tokens      int
}

// NewRateLimiter создает новый rate limiter
// rate - максимальное количество запросов в окне window
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{windowStart: now, tokens: rl.rate}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// Middleware возвращает http middleware поверх лимитера
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		if !rl.Allow(key) {
			rl.logger.WarnContext(r.Context(), "rate limit exceeded",
				"ip", key,
				"method", r.Method,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.SendError(rl.logger, w, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Берем первый IP из списка (реальный клиент)
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Chain применяет middleware в порядке перечисления: первый внешний
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
