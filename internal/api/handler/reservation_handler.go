package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/api/metrics"
	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	ServiceID       int64  `json:"serviceId" validate:"required,gt=0"`
	DateReservation string `json:"dateReservation" validate:"required,datetime=2006-01-02"`
}

type cancelResponse struct {
	Message     string              `json:"message"`
	Reservation *domain.Reservation `json:"reservation"`
}

// Create books a service for the authenticated user.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Booking details"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := domain.ParseDate(req.DateReservation)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dateReservation must be a date in YYYY-MM-DD format")
	}

	res, err := h.reservations.Create(c.Request().Context(), ports.CreateReservationInput{
		UserID:          user.ID,
		ServiceID:       req.ServiceID,
		DateReservation: date,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, res)
}

// MyReservations lists the authenticated user's bookings, most recent date
// first.
//
// @Summary      List own reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserReservation
// @Router       /reservations/myreservations [get]
func (h *ReservationHandler) MyReservations(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	list, err := h.reservations.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Cancel marks one of the authenticated user's reservations as cancelled.
//
// @Summary      Cancel a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation ID"
// @Success      200  {object}  cancelResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reservations/{id}/cancel [put]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.reservations.Cancel(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	metrics.ReservationsCancelledTotal.Inc()

	return c.JSON(http.StatusOK, cancelResponse{
		Message:     "reservation cancelled",
		Reservation: res,
	})
}

// ListAll returns every reservation with owner and service names.
//
// @Summary      List all reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.AdminReservation
// @Failure      403  {object}  map[string]string
// @Router       /reservations [get]
func (h *ReservationHandler) ListAll(c echo.Context) error {
	list, err := h.reservations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Delete removes a reservation regardless of its status or date.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.reservations.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reservation deleted"})
}
