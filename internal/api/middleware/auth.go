package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/core/ports"
)

// Context keys populated on successful authentication.
const (
	ContextUserKey = "user"
	ContextRoleKey = "role"
)

// Auth validates the bearer access token, resolves the identity against the
// user store, and injects both into the request context. The role used
// downstream is the one embedded in the token claim, not the current
// database value: a role change only takes effect once the token expires.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.VerifyAccessToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A deleted account can still hold a token that is valid until
			// expiry; the lookup proves the user exists right now.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}

			user.Role = claims.Role
			c.Set(ContextUserKey, user)
			c.Set(ContextRoleKey, claims.Role)

			return next(c)
		}
	}
}
