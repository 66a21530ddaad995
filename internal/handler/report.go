package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/renthub/rental-service/internal/model"
)

// monthParam reads a "month" query parameter in YYYY-MM form, defaulting
// to the current month.
func monthParam(c echo.Context) (model.Date, error) {
	raw := c.QueryParam("month")
	if raw == "" {
		return model.DateOf(time.Now()), nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return model.Date{}, errors.New("month is invalid, want YYYY-MM")
	}
	return model.DateOf(t), nil
}

func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.rentalSvc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) RevenueReport(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	report, err := h.rentalSvc.RevenueReport(c.Request().Context(), month)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) Logistics(c echo.Context) error {
	stats, err := h.rentalSvc.Logistics(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) UnitReport(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	report, err := h.rentalSvc.UnitReport(c.Request().Context(), month)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) TopUnits(c echo.Context) error {
	month, err := monthParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	n := 5
	if nParam := c.QueryParam("n"); nParam != "" {
		if n, err = strconv.Atoi(nParam); err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "n is invalid")
		}
	}
	top, err := h.rentalSvc.TopUnits(c.Request().Context(), month, n)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, top)
}

func (h *Handler) Notifications(c echo.Context) error {
	upcoming, err := h.rentalSvc.Notifications(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, upcoming)
}

func (h *Handler) ExportUnits(c echo.Context) error {
	rows, err := h.rentalSvc.ExportUnits(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) ExportBookings(c echo.Context) error {
	rows, err := h.rentalSvc.ExportBookings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) ExportTenants(c echo.Context) error {
	rows, err := h.rentalSvc.ExportTenants(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) ExportLogistics(c echo.Context) error {
	rows, err := h.rentalSvc.ExportLogistics(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
