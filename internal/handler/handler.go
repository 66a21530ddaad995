package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/errs"
	md "github.com/renthub/rental-service/pkg/middleware"
	"github.com/renthub/rental-service/pkg/validate"
)

type Handler struct {
	rentalSvc RentalService
	log       *zap.Logger
}

func New(rentalSvc RentalService, log *zap.Logger) *Handler {
	return &Handler{
		rentalSvc: rentalSvc,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/units", h.ListUnits)
	api.GET("/units/:unitId", h.GetUnit)
	api.POST("/units", h.CreateUnit)
	api.PUT("/units/:unitId", h.UpdateUnit)
	api.DELETE("/units/:unitId", h.DeleteUnit)
	api.POST("/units/:unitId/maintenance/finish", h.FinishMaintenance)
	api.POST("/units/describe", h.DescribeUnit)

	api.GET("/tenants", h.ListTenants)
	api.GET("/tenants/next-id", h.NextTenantID)
	api.GET("/tenants/:tenantId", h.GetTenant)
	api.POST("/tenants", h.CreateTenant)
	api.PUT("/tenants/:tenantId", h.UpdateTenant)
	api.DELETE("/tenants/:tenantId", h.DeleteTenant)

	api.GET("/bookings", h.ListBookings)
	api.GET("/bookings/:bookingId", h.GetBooking)
	api.POST("/bookings", h.CreateBooking)
	api.PUT("/bookings/:bookingId", h.UpdateBooking)
	api.DELETE("/bookings/:bookingId", h.DeleteBooking)
	api.POST("/bookings/quote", h.Quote)

	api.GET("/reports/dashboard", h.Dashboard)
	api.GET("/reports/revenue", h.RevenueReport)
	api.GET("/reports/logistics", h.Logistics)
	api.GET("/reports/units", h.UnitReport)
	api.GET("/reports/units/top", h.TopUnits)
	api.GET("/reports/notifications", h.Notifications)

	api.GET("/export/units", h.ExportUnits)
	api.GET("/export/bookings", h.ExportBookings)
	api.GET("/export/tenants", h.ExportTenants)
	api.GET("/export/logistics", h.ExportLogistics)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors to transport status codes. Validation
// failures carry their field messages through.
func httpError(err error) *echo.HTTPError {
	if verr := errs.AsValidationError(err); verr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, verr.Fields())
	}
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
