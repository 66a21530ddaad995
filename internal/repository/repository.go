package repository

import (
	"context"

	"github.com/renthub/rental-service/internal/model"
)

// Repository is the store capability the engine runs against. Writes
// replace whole records; reads return detached copies so callers can
// never mutate stored state behind the engine's back.
type Repository interface {
	GetUnit(ctx context.Context, id string) (model.Unit, error)
	ListUnits(ctx context.Context) ([]model.Unit, error)
	PutUnit(ctx context.Context, unit model.Unit) error
	DeleteUnit(ctx context.Context, id string) error

	GetTenant(ctx context.Context, id string) (model.Tenant, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	PutTenant(ctx context.Context, tenant model.Tenant) error
	DeleteTenant(ctx context.Context, id string) error

	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	PutBooking(ctx context.Context, booking model.Booking) error
	DeleteBooking(ctx context.Context, id string) error
}
