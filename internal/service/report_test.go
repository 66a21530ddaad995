package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/model"
	"github.com/renthub/rental-service/internal/repository"
	"github.com/renthub/rental-service/internal/service"
)

func seedReportData(t *testing.T, repo *repository.Memory) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.PutUnit(ctx, model.Unit{ID: "u1", Name: "EOS R6", Category: model.CategoryCamera, Status: model.UnitOccupied}))
	require.NoError(t, repo.PutUnit(ctx, model.Unit{ID: "u2", Name: "iPhone 15", Category: model.CategoryPhone, Status: model.UnitOutForDelivery}))
	require.NoError(t, repo.PutUnit(ctx, model.Unit{ID: "u3", Name: "RF 50mm", Category: model.CategoryLens, Status: model.UnitMaintenance}))
	require.NoError(t, repo.PutUnit(ctx, model.Unit{ID: "u4", Name: "Tripod", Category: model.CategoryAccessory, Status: model.UnitAvailable}))
	require.NoError(t, repo.PutUnit(ctx, model.Unit{ID: "u5", Name: "SD Card", Category: model.CategoryAccessory, Status: model.UnitAvailable}))

	bookings := []model.Booking{
		{
			ID:         "b1",
			TenantID:   "CS001",
			UnitIDs:    []string{"u1", "u2"},
			StartDate:  model.NewDate(2025, 3, 10),
			EndDate:    model.NewDate(2025, 3, 13),
			TotalPrice: 900_000,
			Status:     model.BookingActive,
			IsDelivery: true,
			Delivery: &model.DeliveryInfo{
				Fee:       25_000,
				Direction: model.DirectionDeliver,
			},
		},
		{
			ID:         "b2",
			TenantID:   "CS002",
			UnitIDs:    []string{"u1", "u3", "u4"},
			StartDate:  model.NewDate(2025, 3, 3),
			EndDate:    model.NewDate(2025, 3, 4),
			TotalPrice: 100_000,
			Status:     model.BookingCompleted,
		},
		{
			// cancelled, must never contribute
			ID:         "b3",
			TenantID:   "CS001",
			UnitIDs:    []string{"u4"},
			StartDate:  model.NewDate(2025, 3, 11),
			EndDate:    model.NewDate(2025, 3, 12),
			TotalPrice: 500_000,
			Status:     model.BookingCancelled,
		},
		{
			// previous month, same year
			ID:         "b4",
			TenantID:   "CS002",
			UnitIDs:    []string{"u2"},
			StartDate:  model.NewDate(2025, 2, 20),
			EndDate:    model.NewDate(2025, 2, 22),
			TotalPrice: 300_000,
			Status:     model.BookingCompleted,
			IsDelivery: true,
			Delivery: &model.DeliveryInfo{
				Fee:       30_000,
				Direction: model.DirectionPickUp,
			},
		},
	}
	for _, b := range bookings {
		require.NoError(t, repo.PutBooking(ctx, b))
	}
}

func reportFixture(t *testing.T) (*repository.Memory, *service.Service) {
	t.Helper()
	repo := repository.NewMemory(zap.NewNop())
	svc := service.NewService(repo, zap.NewNop(), service.WithClock(func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	}))
	seedReportData(t, repo)
	return repo, svc
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.DashboardStats{
		TotalUnits:       5,
		AvailableUnits:   2,
		OccupiedUnits:    1,
		MaintenanceUnits: 1,
		LogisticsUnits:   1,
		OccupancyRate:    40,
		TotalRevenue:     1_300_000,
	}, stats)
}

func TestService_RevenueReport(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	report, err := svc.RevenueReport(context.Background(), model.NewDate(2025, 3, 1))
	require.NoError(t, err)

	require.Equal(t, "2025-03", report.Month)
	require.Equal(t, model.Money(1_000_000), report.MonthlyTotal)
	require.Equal(t, 2, report.Transactions)
	require.Equal(t, model.Money(500_000), report.AveragePerTxn)
	require.Equal(t, model.Money(1_300_000), report.YearTotal)

	require.Len(t, report.Daily, 31, "every day of the month appears")
	require.Equal(t, model.NewDate(2025, 3, 10), report.Daily[9].Date)
	require.Equal(t, model.Money(900_000), report.Daily[9].Revenue)
	require.Equal(t, model.Money(0), report.Daily[10].Revenue, "cancelled booking contributes nothing")

	require.Equal(t, []model.WeeklyRevenue{
		{Week: 1, Revenue: 100_000},
		{Week: 2, Revenue: 900_000},
		{Week: 3, Revenue: 0},
		{Week: 4, Revenue: 0},
	}, report.Weekly, "empty week 5 is hidden")
}

func TestService_RevenueReport_EmptyMonth(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	report, err := svc.RevenueReport(context.Background(), model.NewDate(2025, 6, 1))
	require.NoError(t, err)
	require.Equal(t, model.Money(0), report.MonthlyTotal)
	require.Equal(t, 0, report.Transactions)
	require.Equal(t, model.Money(0), report.AveragePerTxn)
	require.Len(t, report.Daily, 30)
}

func TestService_Logistics(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	stats, err := svc.Logistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.LogisticsStats{
		DailyRevenue:   25_000,
		WeeklyRevenue:  25_000,
		MonthlyRevenue: 25_000,
		TotalJobs:      2,
		Deliveries:     1,
		Pickups:        1,
	}, stats, "february pickup counts as a job but not in the march windows")
}

func TestService_UnitReport(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	report, err := svc.UnitReport(context.Background(), model.NewDate(2025, 3, 1))
	require.NoError(t, err)
	require.Len(t, report, 5, "all units appear, rented or not")

	byID := make(map[string]model.UnitPerformance, len(report))
	for _, row := range report {
		byID[row.UnitID] = row
	}

	// b1: 900000 over 2 units. b2: 100000 over 3 units, remainder 1
	// goes to the leading unit.
	require.Equal(t, model.Money(450_000+33_334), byID["u1"].Revenue)
	require.Equal(t, model.Money(450_000), byID["u2"].Revenue)
	require.Equal(t, model.Money(33_333), byID["u3"].Revenue)
	require.Equal(t, model.Money(33_333), byID["u4"].Revenue, "cancelled b3 attributes nothing on top")
	require.Equal(t, model.Money(0), byID["u5"].Revenue)

	require.Equal(t, 2, byID["u1"].Rentals)
	require.Equal(t, 3+1, byID["u1"].DurationDays)

	var sum model.Money
	for _, row := range report {
		sum += row.Revenue
	}
	require.Equal(t, model.Money(1_000_000), sum, "shares sum back to the exact totals")

	require.Equal(t, "u1", report[0].UnitID, "sorted by revenue, best first")
}

func TestService_TopUnits(t *testing.T) {
	t.Parallel()
	_, svc := reportFixture(t)

	top, err := svc.TopUnits(context.Background(), model.NewDate(2025, 3, 1), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "u1", top[0].UnitID)
	require.Equal(t, "u2", top[1].UnitID)

	all, err := svc.TopUnits(context.Background(), model.NewDate(2025, 3, 1), 10)
	require.NoError(t, err)
	require.Len(t, all, 4, "never-rented units stay off the leaderboard")
}

func TestService_Notifications(t *testing.T) {
	t.Parallel()
	repo, svc := reportFixture(t)
	ctx := context.Background()

	// starts tomorrow
	require.NoError(t, repo.PutBooking(ctx, model.Booking{
		ID:        "b5",
		TenantID:  "CS001",
		UnitIDs:   []string{"u4"},
		StartDate: model.NewDate(2025, 3, 11),
		EndDate:   model.NewDate(2025, 3, 14),
		Status:    model.BookingActive,
	}))

	upcoming, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2, "cancelled b3 starting tomorrow is excluded")
	require.Equal(t, "b1", upcoming[0].ID, "today before tomorrow")
	require.Equal(t, "b5", upcoming[1].ID)
}
