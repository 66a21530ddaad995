package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/renthub/rental-service/internal/model"
)

func (h *Handler) ListUnits(c echo.Context) error {
	units, err := h.rentalSvc.ListUnits(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, units)
}

func (h *Handler) GetUnit(c echo.Context) error {
	unitID := c.Param("unitId")
	if unitID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty unitId")
	}
	unit, err := h.rentalSvc.GetUnit(c.Request().Context(), unitID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, unit)
}

func (h *Handler) CreateUnit(c echo.Context) error {
	var req model.CreateUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	unit, err := h.rentalSvc.CreateUnit(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, unit)
}

func (h *Handler) UpdateUnit(c echo.Context) error {
	unitID := c.Param("unitId")
	var req model.CreateUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	unit, err := h.rentalSvc.UpdateUnit(c.Request().Context(), unitID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, unit)
}

func (h *Handler) DeleteUnit(c echo.Context) error {
	if err := h.rentalSvc.DeleteUnit(c.Request().Context(), c.Param("unitId")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) FinishMaintenance(c echo.Context) error {
	unit, err := h.rentalSvc.FinishMaintenance(c.Request().Context(), c.Param("unitId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, unit)
}

func (h *Handler) DescribeUnit(c echo.Context) error {
	var req model.DescribeUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	text := h.rentalSvc.DescribeUnit(c.Request().Context(), req)
	return c.JSON(http.StatusOK, map[string]string{"description": text})
}
