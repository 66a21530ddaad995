package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/renthub/rental-service/internal/model"
)

func (h *Handler) ListTenants(c echo.Context) error {
	tenants, err := h.rentalSvc.ListTenants(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tenants)
}

func (h *Handler) GetTenant(c echo.Context) error {
	tenantID := c.Param("tenantId")
	if tenantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty tenantId")
	}
	tenant, err := h.rentalSvc.GetTenant(c.Request().Context(), tenantID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tenant)
}

func (h *Handler) NextTenantID(c echo.Context) error {
	id, err := h.rentalSvc.NextTenantID(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) CreateTenant(c echo.Context) error {
	var req model.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	tenant, err := h.rentalSvc.CreateTenant(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, tenant)
}

func (h *Handler) UpdateTenant(c echo.Context) error {
	var req model.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	tenant, err := h.rentalSvc.UpdateTenant(c.Request().Context(), c.Param("tenantId"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tenant)
}

func (h *Handler) DeleteTenant(c echo.Context) error {
	if err := h.rentalSvc.DeleteTenant(c.Request().Context(), c.Param("tenantId")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
