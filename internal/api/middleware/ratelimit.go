package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/api/metrics"
	"github.com/mdtreza/booking-api/internal/infrastructure/config"
)

// Counter abstracts the fixed-window counter store. The Redis
// implementation shares state across instances; the in-memory default is
// process-local and lost on restart.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type memoryWindow struct {
	count   int64
	expires time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryWindow
}

func NewMemoryCounter() Counter {
	return &memoryCounter{entries: make(map[string]*memoryWindow)}
}

func (m *memoryCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w, ok := m.entries[key]
	if !ok || now.After(w.expires) {
		m.prune(now)
		w = &memoryWindow{expires: now.Add(ttl)}
		m.entries[key] = w
	}
	w.count++
	return w.count, nil
}

// prune drops expired windows; called only when a new window opens so the
// map cannot grow unbounded between restarts.
func (m *memoryCounter) prune(now time.Time) {
	for key, w := range m.entries {
		if now.After(w.expires) {
			delete(m.entries, key)
		}
	}
}

// RateLimit caps each client address to cfg.Max requests per fixed window.
// A nil counter selects the in-process store. Counter failures never block
// traffic.
func RateLimit(cfg config.RateLimitConfig, counter Counter) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if counter == nil {
		counter = NewMemoryCounter()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			windowIndex := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), windowIndex)

			n, err := counter.Incr(c.Request().Context(), key, cfg.Window)
			if err != nil {
				return next(c)
			}
			if n > cfg.Max {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
