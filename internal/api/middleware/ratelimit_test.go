package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/infrastructure/config"
)

func doRateLimited(e *echo.Echo, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRateLimit_AllowsUnderQuota(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, Max: 3}
	mw := RateLimit(cfg, NewMemoryCounter())

	for i := 0; i < 3; i++ {
		rec := doRateLimited(e, mw)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_RejectsOverQuota(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, Max: 2}
	mw := RateLimit(cfg, NewMemoryCounter())

	doRateLimited(e, mw)
	doRateLimited(e, mw)
	rec := doRateLimited(e, mw)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: false, Window: 15 * time.Minute, Max: 1}
	mw := RateLimit(cfg, NewMemoryCounter())

	for i := 0; i < 5; i++ {
		rec := doRateLimited(e, mw)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_SeparateClientsSeparateQuotas(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, Max: 1}
	mw := RateLimit(cfg, NewMemoryCounter())

	for i, addr := range []string{"203.0.113.1:80", "203.0.113.2:80"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("client %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}
