package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/core/ports"
)

// AdminUserHandler exposes account administration. Both routes sit behind
// the admin role gate.
type AdminUserHandler struct {
	users ports.UserRepository
}

func NewAdminUserHandler(users ports.UserRepository) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// List returns every account without password hashes.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes an account. Reservations go with it through the schema's
// cascade rule.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
