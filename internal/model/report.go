package model

// Quote is the price breakdown of a booking being composed or committed.
type Quote struct {
	RentalDays  int   `json:"rentalDays"`
	BasePrice   Money `json:"basePrice"`
	DeliveryFee Money `json:"deliveryFee"`
	Total       Money `json:"total"`
	Remaining   Money `json:"remainingBalance"`
}

type DashboardStats struct {
	TotalUnits       int   `json:"totalUnits"`
	AvailableUnits   int   `json:"availableUnits"`
	OccupiedUnits    int   `json:"occupiedUnits"`
	MaintenanceUnits int   `json:"maintenanceUnits"`
	LogisticsUnits   int   `json:"logisticsUnits"`
	OccupancyRate    int   `json:"occupancyRate"`
	TotalRevenue     Money `json:"totalRevenue"`
}

type DailyRevenue struct {
	Date    Date  `json:"date"`
	Revenue Money `json:"revenue"`
}

type WeeklyRevenue struct {
	Week    int   `json:"week"`
	Revenue Money `json:"revenue"`
}

// RevenueReport aggregates non-cancelled bookings of one calendar month,
// attributed by start date.
type RevenueReport struct {
	Month         string          `json:"month"`
	MonthlyTotal  Money           `json:"monthlyTotal"`
	Transactions  int             `json:"transactions"`
	AveragePerTxn Money           `json:"averagePerTransaction"`
	Daily         []DailyRevenue  `json:"daily"`
	Weekly        []WeeklyRevenue `json:"weekly"`
	YearTotal     Money           `json:"yearTotal"`
}

// LogisticsStats covers delivery bookings only; its revenue figures are
// courier fees, not booking totals.
type LogisticsStats struct {
	DailyRevenue   Money `json:"dailyRevenue"`
	WeeklyRevenue  Money `json:"weeklyRevenue"`
	MonthlyRevenue Money `json:"monthlyRevenue"`
	TotalJobs      int   `json:"totalJobs"`
	Deliveries     int   `json:"deliveries"`
	Pickups        int   `json:"pickups"`
}

// UnitPerformance is one row of the monthly per-asset ranking.
type UnitPerformance struct {
	UnitID       string       `json:"unitId"`
	Name         string       `json:"name"`
	Category     UnitCategory `json:"category"`
	Rentals      int          `json:"rentals"`
	Revenue      Money        `json:"revenue"`
	DurationDays int          `json:"durationDays"`
}

// Export rows: flattened projections handed to the export collaborator.

type UnitExportRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	DailyRate Money  `json:"dailyRate"`
	PromoRate Money  `json:"promoRate"`
	Location  string `json:"location"`
	Features  string `json:"features"`
}

type BookingExportRow struct {
	ID         string `json:"id"`
	Tenant     string `json:"tenant"`
	Units      string `json:"units"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Total      Money  `json:"total"`
	Discount   Money  `json:"discount"`
	Remaining  Money  `json:"remainingBalance"`
	Status     string `json:"status"`
	Method     string `json:"method"`
	IsDelivery bool   `json:"isDelivery"`
}

type TenantExportRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	JoinDate string `json:"joinDate"`
}

type LogisticsExportRow struct {
	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	Courier   string `json:"courier"`
	Direction string `json:"direction"`
	Fee       Money  `json:"fee"`
	Address   string `json:"address"`
	Status    string `json:"status"`
}
