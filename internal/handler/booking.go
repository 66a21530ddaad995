package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/renthub/rental-service/internal/model"
)

func (h *Handler) ListBookings(c echo.Context) error {
	bookings, err := h.rentalSvc.ListBookings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookingId")
	}
	booking, err := h.rentalSvc.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var input model.BookingInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	booking, err := h.rentalSvc.CreateBooking(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *Handler) UpdateBooking(c echo.Context) error {
	var input model.BookingInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	booking, err := h.rentalSvc.UpdateBooking(c.Request().Context(), c.Param("bookingId"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) DeleteBooking(c echo.Context) error {
	if err := h.rentalSvc.DeleteBooking(c.Request().Context(), c.Param("bookingId")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Quote(c echo.Context) error {
	var input model.BookingInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	quote, err := h.rentalSvc.Quote(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, quote)
}
