package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/pkg/logger"
)

func renderError(t *testing.T, err error, env string) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(logger.Get(), env)(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate email answers 400", domain.ErrUserExists, http.StatusBadRequest},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"service not found", domain.ErrServiceNotFound, http.StatusNotFound},
		{"reservation not found", domain.ErrReservationNotFound, http.StatusNotFound},
		{"past reservation", domain.ErrPastReservation, http.StatusBadRequest},
		{"date in the past", domain.ErrInvalidReservationDate, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err, "production")
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatalf("expected an error message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrServiceNotFound)
	code, _ := renderError(t, wrapped, "production")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusForbidden, "access denied"), "production")
	if code != http.StatusForbidden || msg != "access denied" {
		t.Fatalf("unexpected response: %d %q", code, msg)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := renderError(t, errors.New("disk on fire"), "production")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("production must not leak details, got %q", msg)
	}
}

func TestErrorHandler_DevelopmentEchoesDetail(t *testing.T) {
	code, msg := renderError(t, errors.New("disk on fire"), "development")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "disk on fire" {
		t.Fatalf("development should echo the cause, got %q", msg)
	}
}
