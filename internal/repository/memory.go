package repository

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/model"
)

// Memory is the reference Repository: three mutex-guarded maps. Every
// read hands out a deep copy, so a read taken between two writes is a
// consistent snapshot of the record it returns.
type Memory struct {
	mu       sync.RWMutex
	units    map[string]model.Unit
	tenants  map[string]model.Tenant
	bookings map[string]model.Booking
	log      *zap.Logger
}

func NewMemory(log *zap.Logger) *Memory {
	return &Memory{
		units:    make(map[string]model.Unit),
		tenants:  make(map[string]model.Tenant),
		bookings: make(map[string]model.Booking),
		log:      log.Named("memory"),
	}
}

func cloneDelivery(d *model.DeliveryInfo) *model.DeliveryInfo {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func cloneUnit(u model.Unit) model.Unit {
	u.Features = cloneStrings(u.Features)
	u.Delivery = cloneDelivery(u.Delivery)
	if u.Specs != nil {
		cp := *u.Specs
		u.Specs = &cp
	}
	return u
}

func cloneBooking(b model.Booking) model.Booking {
	b.UnitIDs = cloneStrings(b.UnitIDs)
	b.Guarantees = cloneStrings(b.Guarantees)
	b.Delivery = cloneDelivery(b.Delivery)
	return b
}

func (m *Memory) GetUnit(_ context.Context, id string) (model.Unit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.units[id]
	if !ok {
		return model.Unit{}, errs.ErrNotFound
	}
	return cloneUnit(u), nil
}

func (m *Memory) ListUnits(_ context.Context) ([]model.Unit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Unit, 0, len(m.units))
	for _, u := range m.units {
		out = append(out, cloneUnit(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) PutUnit(_ context.Context, unit model.Unit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.units[unit.ID] = cloneUnit(unit)
	return nil
}

func (m *Memory) DeleteUnit(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.units[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.units, id)
	return nil
}

func (m *Memory) GetTenant(_ context.Context, id string) (model.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tenants[id]
	if !ok {
		return model.Tenant{}, errs.ErrNotFound
	}
	return t, nil
}

func (m *Memory) ListTenants(_ context.Context) ([]model.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Tenant, 0, len(m.tenants))
	for _, t := range m.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) PutTenant(_ context.Context, tenant model.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tenants[tenant.ID] = tenant
	return nil
}

func (m *Memory) DeleteTenant(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tenants[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.tenants, id)
	return nil
}

func (m *Memory) GetBooking(_ context.Context, id string) (model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, errs.ErrNotFound
	}
	return cloneBooking(b), nil
}

// ListBookings returns bookings newest first.
func (m *Memory) ListBookings(_ context.Context) ([]model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[j].StartDate.Before(out[i].StartDate.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) PutBooking(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

func (m *Memory) DeleteBooking(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}
