package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/renthub/rental-service/internal/model"
)

// Export projections flatten the collections into tabular rows for the
// export collaborator. References are resolved to display names; a
// dangling reference degrades to the raw id instead of failing the row.

func (s *Service) ExportUnits(ctx context.Context) ([]model.UnitExportRow, error) {
	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list units")
	}

	rows := make([]model.UnitExportRow, 0, len(units))
	for _, u := range units {
		rows = append(rows, model.UnitExportRow{
			ID:        u.ID,
			Name:      u.Name,
			Category:  string(u.Category),
			Status:    string(u.Status),
			DailyRate: u.DailyRate,
			PromoRate: u.PromoRate,
			Location:  u.Location,
			Features:  strings.Join(u.Features, " | "),
		})
	}
	return rows, nil
}

func (s *Service) ExportBookings(ctx context.Context) ([]model.BookingExportRow, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}

	rows := make([]model.BookingExportRow, 0, len(bookings))
	for _, b := range bookings {
		tenantName := b.TenantID
		if tenant, err := s.repo.GetTenant(ctx, b.TenantID); err == nil {
			tenantName = tenant.Name
		}

		unitNames := make([]string, 0, len(b.UnitIDs))
		for _, id := range b.UnitIDs {
			if unit, err := s.repo.GetUnit(ctx, id); err == nil {
				unitNames = append(unitNames, unit.Name)
			} else {
				unitNames = append(unitNames, id)
			}
		}

		rows = append(rows, model.BookingExportRow{
			ID:         b.ID,
			Tenant:     tenantName,
			Units:      strings.Join(unitNames, " | "),
			StartDate:  b.StartDate.String(),
			EndDate:    b.EndDate.String(),
			Total:      b.TotalPrice,
			Discount:   b.Discount,
			Remaining:  b.Remaining,
			Status:     string(b.Status),
			Method:     string(b.PaymentMethod),
			IsDelivery: b.IsDelivery,
		})
	}
	return rows, nil
}

func (s *Service) ExportTenants(ctx context.Context) ([]model.TenantExportRow, error) {
	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list tenants")
	}

	rows := make([]model.TenantExportRow, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, model.TenantExportRow{
			ID:       t.ID,
			Name:     t.Name,
			Phone:    t.Phone,
			Address:  t.Address,
			Status:   string(t.Membership),
			JoinDate: t.JoinDate.String(),
		})
	}
	return rows, nil
}

func (s *Service) ExportLogistics(ctx context.Context) ([]model.LogisticsExportRow, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}

	rows := make([]model.LogisticsExportRow, 0)
	for _, b := range bookings {
		if !counted(b) || !b.IsDelivery || b.Delivery == nil {
			continue
		}
		rows = append(rows, model.LogisticsExportRow{
			BookingID: b.ID,
			Date:      b.StartDate.String(),
			Courier:   b.Delivery.CourierName,
			Direction: string(b.Delivery.Direction),
			Fee:       b.Delivery.Fee,
			Address:   b.Delivery.DestinationAddress,
			Status:    string(b.Status),
		})
	}
	return rows, nil
}
