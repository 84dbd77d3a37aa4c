package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

type stubReservationService struct {
	createFn      func(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error)
	cancelFn      func(ctx context.Context, id, requesterID int64) (*domain.Reservation, error)
	deleteFn      func(ctx context.Context, id int64) error
	listForUserFn func(ctx context.Context, userID int64) ([]*ports.UserReservation, error)
	listAllFn     func(ctx context.Context) ([]*ports.AdminReservation, error)
}

func (s *stubReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.createFn(ctx, input)
}

func (s *stubReservationService) Cancel(ctx context.Context, id, requesterID int64) (*domain.Reservation, error) {
	return s.cancelFn(ctx, id, requesterID)
}

func (s *stubReservationService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubReservationService) ListForUser(ctx context.Context, userID int64) ([]*ports.UserReservation, error) {
	return s.listForUserFn(ctx, userID)
}

func (s *stubReservationService) ListAll(ctx context.Context) ([]*ports.AdminReservation, error) {
	return s.listAllFn(ctx)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID int64) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: userID, Prenom: "Jean", Nom: "Valjean", Email: "jean@example.com", Role: domain.RoleClient})
	return c
}

func TestReservationHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
			if input.UserID != 4 || input.ServiceID != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Reservation{
				ID:              10,
				UserID:          input.UserID,
				ServiceID:       input.ServiceID,
				DateReservation: input.DateReservation,
				Status:          domain.StatusConfirmed,
			}, nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(`{"serviceId":2,"dateReservation":"2030-06-15"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusConfirmed) || resp["dateReservation"] != "2030-06-15" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReservationHandler_Create_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing serviceId": `{"dateReservation":"2030-06-15"}`,
		"bad date format":   `{"serviceId":2,"dateReservation":"15/06/2030"}`,
		"missing date":      `{"serviceId":2}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubReservationService{
				createFn: func(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			handler := NewReservationHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := authedContext(e, req, rec, 4)

			err := handler.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestReservationHandler_Create_UnknownService(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
			return nil, domain.ErrServiceNotFound
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(`{"serviceId":99,"dateReservation":"2030-06-15"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestReservationHandler_Cancel_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		cancelFn: func(ctx context.Context, id, requesterID int64) (*domain.Reservation, error) {
			if id != 10 || requesterID != 4 {
				t.Fatalf("unexpected args: %d %d", id, requesterID)
			}
			return &domain.Reservation{ID: 10, UserID: 4, Status: domain.StatusCancelled}, nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/reservations/10/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := handler.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in payload: %+v", resp)
	}
	reservation, ok := resp["reservation"].(map[string]any)
	if !ok || reservation["status"] != string(domain.StatusCancelled) {
		t.Fatalf("unexpected reservation payload: %+v", resp)
	}
}

func TestReservationHandler_Cancel_PastDate(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		cancelFn: func(ctx context.Context, id, requesterID int64) (*domain.Reservation, error) {
			return nil, domain.ErrPastReservation
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/reservations/10/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)
	c.SetParamNames("id")
	c.SetParamValues("10")

	err := handler.Cancel(c)
	if !errors.Is(err, domain.ErrPastReservation) {
		t.Fatalf("expected ErrPastReservation, got %v", err)
	}
}

func TestReservationHandler_Cancel_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		cancelFn: func(ctx context.Context, id, requesterID int64) (*domain.Reservation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/reservations/abc/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Cancel(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestReservationHandler_MyReservations(t *testing.T) {
	e := newTestEcho()
	date, _ := domain.ParseDate("2030-06-15")
	stub := &stubReservationService{
		listForUserFn: func(ctx context.Context, userID int64) ([]*ports.UserReservation, error) {
			if userID != 4 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return []*ports.UserReservation{
				{
					Reservation: domain.Reservation{ID: 10, UserID: 4, ServiceID: 2, DateReservation: date, Status: domain.StatusConfirmed},
					Service:     ports.ServiceRef{Nom: "Massage"},
				},
			}, nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/reservations/myreservations", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 4)

	if err := handler.MyReservations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(resp))
	}
	service, ok := resp[0]["service"].(map[string]any)
	if !ok || service["nom"] != "Massage" {
		t.Fatalf("expected joined service name, got %+v", resp[0])
	}
}

func TestReservationHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := int64(0)
	stub := &stubReservationService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewReservationHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/reservations/10", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 1)
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 10 {
		t.Fatalf("expected delete of 10, got %d", deleted)
	}
}
