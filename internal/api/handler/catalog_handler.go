package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdtreza/booking-api/internal/core/ports"
)

type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createServiceRequest struct {
	Nom         string  `json:"nom" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Prix        float64 `json:"prix" validate:"required,gt=0"`
}

type updateServiceRequest struct {
	Nom         *string  `json:"nom"`
	Description *string  `json:"description"`
	Prix        *float64 `json:"prix" validate:"omitempty,gt=0"`
}

// List returns every bookable service.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      500  {object}  map[string]string
// @Router       /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get returns a single service by id.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	svc, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Create adds a new service to the catalog.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /services/add [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		Nom:         req.Nom,
		Description: req.Description,
		Prix:        req.Prix,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update applies a partial update to a service.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Update(c.Request().Context(), id, ports.UpdateServiceInput{
		Nom:         req.Nom,
		Description: req.Description,
		Prix:        req.Prix,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete removes a service from the catalog.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service deleted"})
}
