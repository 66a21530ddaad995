package handler

import (
	"context"

	"github.com/renthub/rental-service/internal/model"
	"github.com/renthub/rental-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RentalService interface {
	GetUnit(ctx context.Context, id string) (model.Unit, error)
	ListUnits(ctx context.Context) ([]model.Unit, error)
	CreateUnit(ctx context.Context, req model.CreateUnitRequest) (model.Unit, error)
	UpdateUnit(ctx context.Context, id string, req model.CreateUnitRequest) (model.Unit, error)
	DeleteUnit(ctx context.Context, id string) error
	FinishMaintenance(ctx context.Context, id string) (model.Unit, error)
	DescribeUnit(ctx context.Context, req model.DescribeUnitRequest) string

	GetTenant(ctx context.Context, id string) (model.Tenant, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	NextTenantID(ctx context.Context) (string, error)
	CreateTenant(ctx context.Context, req model.CreateTenantRequest) (model.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req model.CreateTenantRequest) (model.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	CreateBooking(ctx context.Context, input model.BookingInput) (model.Booking, error)
	UpdateBooking(ctx context.Context, id string, input model.BookingInput) (model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	Quote(ctx context.Context, input model.BookingInput) (model.Quote, error)

	Dashboard(ctx context.Context) (model.DashboardStats, error)
	RevenueReport(ctx context.Context, month model.Date) (model.RevenueReport, error)
	Logistics(ctx context.Context) (model.LogisticsStats, error)
	UnitReport(ctx context.Context, month model.Date) ([]model.UnitPerformance, error)
	TopUnits(ctx context.Context, month model.Date, n int) ([]model.UnitPerformance, error)
	Notifications(ctx context.Context) ([]model.Booking, error)

	ExportUnits(ctx context.Context) ([]model.UnitExportRow, error)
	ExportBookings(ctx context.Context) ([]model.BookingExportRow, error)
	ExportTenants(ctx context.Context) ([]model.TenantExportRow, error)
	ExportLogistics(ctx context.Context) ([]model.LogisticsExportRow, error)
}

var _ RentalService = (*service.Service)(nil)
