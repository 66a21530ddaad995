package service

import (
	"context"
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/renthub/rental-service/internal/model"
)

// startOfWeek returns the Monday of the week containing d.
func startOfWeek(d model.Date) model.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func startOfMonth(d model.Date) model.Date {
	return model.NewDate(d.Year(), d.Month(), 1)
}

func daysInMonth(d model.Date) int {
	return model.NewDate(d.Year(), d.Month()+1, 0).Day()
}

// weekOfMonth buckets a day-of-month into weeks 1..5.
func weekOfMonth(day int) int {
	return (day + 6) / 7
}

func counted(b model.Booking) bool {
	return b.Status != model.BookingCancelled
}

// unitsAndBookings fetches both collections concurrently. The two reads
// are independent snapshots.
func (s *Service) unitsAndBookings(ctx context.Context) ([]model.Unit, []model.Booking, error) {
	var (
		units    []model.Unit
		bookings []model.Booking
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		units, err = s.repo.ListUnits(ctx)
		return errors.Wrap(err, "list units")
	})
	gg.Go(func() error {
		var err error
		bookings, err = s.repo.ListBookings(ctx)
		return errors.Wrap(err, "list bookings")
	})
	if err := gg.Wait(); err != nil {
		return nil, nil, err
	}
	return units, bookings, nil
}

// Dashboard summarizes unit occupancy and all-time revenue. Cancelled
// bookings never contribute revenue.
func (s *Service) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	units, bookings, err := s.unitsAndBookings(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}

	stats := model.DashboardStats{TotalUnits: len(units)}
	for _, u := range units {
		switch {
		case u.Status == model.UnitOccupied:
			stats.OccupiedUnits++
		case u.Status == model.UnitMaintenance:
			stats.MaintenanceUnits++
		case u.Status.InLogistics():
			stats.LogisticsUnits++
		}
	}
	stats.AvailableUnits = stats.TotalUnits - stats.OccupiedUnits -
		stats.MaintenanceUnits - stats.LogisticsUnits

	if stats.TotalUnits > 0 {
		rented := stats.OccupiedUnits + stats.LogisticsUnits
		stats.OccupancyRate = int(math.Round(float64(rented) / float64(stats.TotalUnits) * 100))
	}

	for _, b := range bookings {
		if counted(b) {
			stats.TotalRevenue += b.TotalPrice
		}
	}
	return stats, nil
}

// RevenueReport aggregates one calendar month, with a daily series, the
// week 1..5 buckets and the year running total for context. A booking
// is attributed entirely to the month its start date falls in.
func (s *Service) RevenueReport(ctx context.Context, month model.Date) (model.RevenueReport, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return model.RevenueReport{}, errors.Wrap(err, "list bookings")
	}

	report := model.RevenueReport{Month: month.Format("2006-01")}

	daily := make(map[int]model.Money)
	weekly := [6]model.Money{}
	for _, b := range bookings {
		if !counted(b) {
			continue
		}
		if b.StartDate.Year() == month.Year() {
			report.YearTotal += b.TotalPrice
		}
		if !b.StartDate.SameMonth(month) {
			continue
		}
		report.MonthlyTotal += b.TotalPrice
		report.Transactions++
		day := b.StartDate.Day()
		daily[day] += b.TotalPrice
		weekly[weekOfMonth(day)] += b.TotalPrice
	}

	if report.Transactions > 0 {
		report.AveragePerTxn = model.Money(math.Round(
			float64(report.MonthlyTotal) / float64(report.Transactions)))
	}

	first := startOfMonth(month)
	for day := 1; day <= daysInMonth(month); day++ {
		report.Daily = append(report.Daily, model.DailyRevenue{
			Date:    first.AddDays(day - 1),
			Revenue: daily[day],
		})
	}

	for week := 1; week <= 5; week++ {
		if week == 5 && weekly[week] == 0 {
			continue
		}
		report.Weekly = append(report.Weekly, model.WeeklyRevenue{
			Week:    week,
			Revenue: weekly[week],
		})
	}

	return report, nil
}

// Logistics reports on delivery bookings only. Revenue here means the
// courier fee, not the booking total.
func (s *Service) Logistics(ctx context.Context) (model.LogisticsStats, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return model.LogisticsStats{}, errors.Wrap(err, "list bookings")
	}

	today := s.today()
	weekStart := startOfWeek(today)
	monthStart := startOfMonth(today)

	var stats model.LogisticsStats
	for _, b := range bookings {
		if !counted(b) || !b.IsDelivery || b.Delivery == nil {
			continue
		}
		stats.TotalJobs++
		if b.Delivery.Direction == model.DirectionPickUp {
			stats.Pickups++
		} else {
			stats.Deliveries++
		}

		if b.StartDate.Equal(today) {
			stats.DailyRevenue += b.Delivery.Fee
		}
		if !b.StartDate.Before(weekStart.Time) {
			stats.WeeklyRevenue += b.Delivery.Fee
		}
		if !b.StartDate.Before(monthStart.Time) {
			stats.MonthlyRevenue += b.Delivery.Fee
		}
	}
	return stats, nil
}

// UnitReport ranks every unit by the revenue attributed to it in the
// given month. A booking's total is split evenly across its units, with
// the integer remainder spread over the leading ones so the shares sum
// back to the exact total. Bookings referencing unknown units degrade
// to dropping those shares instead of failing the report.
func (s *Service) UnitReport(ctx context.Context, month model.Date) ([]model.UnitPerformance, error) {
	units, bookings, err := s.unitsAndBookings(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		rentals  int
		revenue  model.Money
		duration int
	}
	perUnit := make(map[string]*acc)

	for _, b := range bookings {
		if !counted(b) || !b.StartDate.SameMonth(month) {
			continue
		}
		n := len(b.UnitIDs)
		if n == 0 {
			continue
		}

		days := RentalDays(b.StartDate, b.EndDate)
		if days == 0 {
			days = 1
		}
		share := b.TotalPrice / model.Money(n)
		remainder := int(b.TotalPrice % model.Money(n))

		for i, id := range b.UnitIDs {
			a, ok := perUnit[id]
			if !ok {
				a = &acc{}
				perUnit[id] = a
			}
			a.rentals++
			a.duration += days
			a.revenue += share
			if i < remainder {
				a.revenue++
			}
		}
	}

	report := make([]model.UnitPerformance, 0, len(units))
	for _, u := range units {
		row := model.UnitPerformance{
			UnitID:   u.ID,
			Name:     u.Name,
			Category: u.Category,
		}
		if a, ok := perUnit[u.ID]; ok {
			row.Rentals = a.rentals
			row.Revenue = a.revenue
			row.DurationDays = a.duration
		}
		report = append(report, row)
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].Revenue != report[j].Revenue {
			return report[i].Revenue > report[j].Revenue
		}
		return report[i].UnitID < report[j].UnitID
	})
	return report, nil
}

// TopUnits is the leaderboard slice of UnitReport: units that earned
// something that month, best first, at most n rows.
func (s *Service) TopUnits(ctx context.Context, month model.Date, n int) ([]model.UnitPerformance, error) {
	report, err := s.UnitReport(ctx, month)
	if err != nil {
		return nil, err
	}

	top := make([]model.UnitPerformance, 0, n)
	for _, row := range report {
		if row.Rentals == 0 {
			continue
		}
		top = append(top, row)
		if len(top) == n {
			break
		}
	}
	return top, nil
}

// Notifications lists non-cancelled bookings starting today or
// tomorrow, soonest first.
func (s *Service) Notifications(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}

	today := s.today()
	tomorrow := today.AddDays(1)

	upcoming := make([]model.Booking, 0)
	for _, b := range bookings {
		if !counted(b) {
			continue
		}
		if b.StartDate.Equal(today) || b.StartDate.Equal(tomorrow) {
			upcoming = append(upcoming, b)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].StartDate.Equal(upcoming[j].StartDate) {
			return upcoming[i].StartDate.Before(upcoming[j].StartDate.Time)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	return upcoming, nil
}
