package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/api/metrics"
	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Prenom        string `json:"prenom" validate:"required"`
	Nom           string `json:"nom" validate:"required"`
	DateNaissance string `json:"dateNaissance" validate:"required,datetime=2006-01-02"`
	Adresse       string `json:"adresse" validate:"required"`
	CodePostal    string `json:"codePostal" validate:"required,len=5,numeric"`
	Ville         string `json:"ville" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Token string `json:"token"`
}

type registerResponse struct {
	ID     int64  `json:"id"`
	Prenom string `json:"prenom"`
	Nom    string `json:"nom"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type loginResponse struct {
	ID           int64  `json:"id"`
	Prenom       string `json:"prenom"`
	Nom          string `json:"nom"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type profileResponse struct {
	ID     int64  `json:"id"`
	Prenom string `json:"prenom"`
	Nom    string `json:"nom"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Register creates a new client account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthDate, err := domain.ParseDate(req.DateNaissance)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dateNaissance must be a date in YYYY-MM-DD format")
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Prenom:        req.Prenom,
		Nom:           req.Nom,
		DateNaissance: birthDate,
		Adresse:       req.Adresse,
		CodePostal:    req.CodePostal,
		Ville:         req.Ville,
		Email:         req.Email,
		Password:      req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		ID:     user.ID,
		Prenom: user.Prenom,
		Nom:    user.Nom,
		Email:  user.Email,
		Token:  token,
	})
}

// Login authenticates a user and returns access and refresh tokens.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		ID:           result.User.ID,
		Prenom:       result.User.Prenom,
		Nom:          result.User.Nom,
		Email:        result.User.Email,
		Role:         result.User.Role,
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// RefreshToken exchanges a refresh token for a new access token.
//
// @Summary      Refresh the access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users/refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "refresh token required")
	}

	accessToken, err := h.authService.Refresh(req.Token)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "invalid refresh token")
	}

	return c.JSON(http.StatusOK, map[string]string{"accessToken": accessToken})
}

// Profile returns the authenticated user's account details.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:     user.ID,
		Prenom: user.Prenom,
		Nom:    user.Nom,
		Email:  user.Email,
		Role:   user.Role,
	})
}
